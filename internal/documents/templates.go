package documents

import "html/template"

var billTemplate = template.Must(template.New("bill").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  @page { size: A4; margin: 2cm; }
  body { font-family: Arial, sans-serif; font-size: 14px; }
  h1 { font-size: 18px; margin-bottom: 0; }
  .meta { color: #555; margin-bottom: 16px; }
  table { width: 100%; border-collapse: collapse; }
  th, td { text-align: left; padding: 4px 8px; border-bottom: 1px solid #ddd; }
  .totals td { border: none; padding: 2px 8px; }
  .grand { font-weight: bold; }
</style>
</head>
<body>
<h1>{{.RestaurantName}}</h1>
<div class="meta">
  {{if .Address}}{{.Address}}<br>{{end}}
  {{if .GSTNumber}}GSTIN: {{.GSTNumber}}<br>{{end}}
  Bill for Order #{{.OrderID}} &mdash; Table {{.TableNumber}}<br>
  {{.PlacedAt}}
</div>
<table>
  <tr><th>Item</th><th>Size</th><th>Qty</th><th>Price</th><th>Total</th></tr>
  {{range .Lines}}
  <tr><td>{{.Name}}</td><td>{{.Size}}</td><td>{{.Quantity}}</td><td>{{.Price}}</td><td>{{.Total}}</td></tr>
  {{end}}
</table>
<table class="totals">
  <tr><td>Subtotal</td><td>{{.Subtotal}}</td></tr>
  <tr><td>GST ({{.GSTRate}}%)</td><td>{{.GSTAmount}}</td></tr>
  <tr class="grand"><td>Grand Total</td><td>{{.GrandTotal}}</td></tr>
</table>
</body>
</html>`))

var kotTemplate = template.Must(template.New("kot").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: monospace; font-size: 14px; }
  h1 { font-size: 16px; }
  li { margin-bottom: 4px; }
</style>
</head>
<body>
<h1>KOT &mdash; Order #{{.OrderID}}</h1>
<p>Table {{.TableNumber}} &middot; {{.PlacedAt}}</p>
<ul>
  {{range .Lines}}
  <li>{{.Quantity}}x {{.Name}} ({{.Size}})</li>
  {{end}}
</ul>
</body>
</html>`))
