package resend

import "html/template"

var customerTemplate = template.Must(template.New("customer").Parse(`<!DOCTYPE html>
<html>
<body style="font-family:sans-serif;max-width:600px;margin:0 auto;">
  <h2>Order Confirmed</h2>
  <p>Hi {{.CustomerName}}, your payment has been received.</p>
  <h3>Order {{.OrderNumber}} ({{.OrderDate}})</h3>
  <table width="100%" cellpadding="4">
    {{range .Items}}
    <tr>
      <td>{{.Name}}{{if .Size}} ({{.Size}}){{end}} x{{.Quantity}}</td>
      <td align="right">&#8377;{{.LineTotal}}</td>
    </tr>
    {{end}}
    <tr><td>Subtotal</td><td align="right">&#8377;{{.Subtotal}}</td></tr>
    <tr><td>Delivery ({{.State}})</td><td align="right">&#8377;{{.Delivery}}</td></tr>
    <tr><td><strong>Total paid</strong></td><td align="right"><strong>&#8377;{{.Total}}</strong></td></tr>
  </table>
  <h3>Delivery address</h3>
  <p>{{.CustomerName}}<br>{{.Address}}<br>{{.State}}<br>Phone: {{.Phone}}</p>
</body>
</html>`))

var adminTemplate = template.Must(template.New("admin").Parse(`<!DOCTYPE html>
<html>
<body style="font-family:sans-serif;max-width:600px;margin:0 auto;">
  <h2>New order received</h2>
  <p><strong>Order:</strong> {{.OrderNumber}}<br>
     <strong>Customer:</strong> {{.CustomerName}}<br>
     <strong>Phone:</strong> {{.Phone}}<br>
     <strong>Email:</strong> {{.Email}}<br>
     <strong>Amount:</strong> &#8377;{{.Total}}</p>
  <h3>Items</h3>
  <ul>
    {{range .Items}}
    <li>{{.Name}}{{if .Size}} ({{.Size}}){{end}} x{{.Quantity}} = &#8377;{{.LineTotal}}</li>
    {{end}}
  </ul>
  <h3>Delivery to</h3>
  <p>{{.Address}}<br>{{.State}}</p>
</body>
</html>`))
