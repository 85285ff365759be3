package chat

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"tabletab/internal/models"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// Message is one turn of the conversation history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CartItem is an item the assistant has collected for the pending order.
type CartItem struct {
	MenuItemID uint               `json:"menu_item_id"`
	Name       string             `json:"name"`
	Quantity   int                `json:"quantity"`
	Size       models.PortionSize `json:"size"`
}

// Request is one customer turn with the session state the client carries.
type Request struct {
	SessionID      string            `json:"session_id"`
	Message        string            `json:"message"`
	TableNumber    string            `json:"table_number"`
	RestaurantName string            `json:"restaurant_name"`
	MenuItems      []models.MenuItem `json:"menu_items"`
	CartItems      []CartItem        `json:"cart_items"`
	History        []Message         `json:"chat_history"`
}

// Response carries the assistant's reply and updated session state.
// CreateOrder signals the caller to write the cart as a pending order.
type Response struct {
	SessionID   string     `json:"session_id"`
	Reply       string     `json:"reply"`
	TableNumber string     `json:"table_number"`
	CartItems   []CartItem `json:"cart_items"`
	CreateOrder bool       `json:"create_order"`
}

// Assistant drives the conversational ordering flow. Table-number capture
// and menu display are handled locally; everything else is delegated to the
// language model, whose reply is scanned for an order confirmation.
type Assistant struct {
	model llms.Model
}

// NewAssistant creates an assistant backed by the given model.
func NewAssistant(model llms.Model) *Assistant {
	return &Assistant{model: model}
}

var digitsRe = regexp.MustCompile(`\d+`)

// Respond handles one customer turn.
func (a *Assistant) Respond(ctx context.Context, req Request) (*Response, error) {
	resp := &Response{
		SessionID:   req.SessionID,
		TableNumber: req.TableNumber,
		CartItems:   req.CartItems,
	}
	if resp.SessionID == "" {
		resp.SessionID = uuid.NewString()
	}

	// A numeric message before a table is known is taken as the table number.
	if req.TableNumber == "" {
		if number := digitsRe.FindString(req.Message); number != "" {
			resp.TableNumber = number
			resp.Reply = fmt.Sprintf(
				"Thank you! I've noted your table number as %s. Would you like to see our menu? "+
					"I can help you explore our specialties and place your order.", number)
			return resp, nil
		}
	}

	lower := strings.ToLower(req.Message)
	if strings.Contains(lower, "menu") || strings.Contains(lower, "what do you have") {
		resp.Reply = formatMenu(req.MenuItems)
		return resp, nil
	}

	reply, err := a.generate(ctx, req)
	if err != nil {
		return nil, err
	}
	resp.Reply = reply

	lowerReply := strings.ToLower(reply)
	if strings.Contains(lowerReply, "confirm") && strings.Contains(lowerReply, "order") {
		resp.CreateOrder = true
	}

	return resp, nil
}

func (a *Assistant) generate(ctx context.Context, req Request) (string, error) {
	content := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, systemPrompt(req)),
	}
	for _, msg := range req.History {
		role := schema.ChatMessageTypeHuman
		if msg.Role == "assistant" {
			role = schema.ChatMessageTypeAI
		}
		content = append(content, llms.TextParts(role, msg.Content))
	}
	content = append(content, llms.TextParts(schema.ChatMessageTypeHuman, req.Message))

	completion, err := a.model.GenerateContent(ctx, content, llms.WithTemperature(0.7))
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return completion.Choices[0].Content, nil
}
