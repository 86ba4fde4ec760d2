package checkout

import (
	"html/template"
	"io"
)

// The embedded payment surface: a self-contained document that loads the
// gateway script, opens the modal, and posts exactly one {event, payload}
// message back to the host. The host never messages the page; it only
// serves it and, on a terminal status, stops doing so.
var pageTemplate = template.Must(template.New("checkout").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Pay invoice</title>
<script src="https://checkout.razorpay.com/v1/checkout.js"></script>
</head>
<body>
<script>
function post(message) {
  return fetch({{.MessagePath}}, {
    method: "POST",
    headers: {"Content-Type": "application/json"},
    body: JSON.stringify(message)
  }).catch(function () {}).then(function () {
    window.location.replace({{.ReturnPath}});
  });
}

var rzp = new Razorpay({
  key: {{.Session.Order.GatewayKey}},
  amount: {{.Session.Order.AmountPaise}},
  currency: {{.Session.Order.Currency}},
  order_id: {{.Session.Order.OrderID}},
  name: "Society Maintenance",
  description: "Invoice payment",
  prefill: {
    name: {{.Session.Prefill.Name}},
    email: {{.Session.Prefill.Email}},
    contact: {{.Session.Prefill.Contact}}
  },
  handler: function (response) {
    post({event: "SUCCESS", payload: response});
  },
  modal: {
    ondismiss: function () {
      post({event: "DISMISS"});
    }
  }
});

rzp.on("payment.failed", function (response) {
  post({event: "FAILED", payload: response.error});
});

rzp.open();
</script>
</body>
</html>
`))

type pageData struct {
	Session     Session
	MessagePath string
	ReturnPath  string
}

// RenderPage writes the embedded payment surface for the given session.
func RenderPage(w io.Writer, s Session, messagePath, returnPath string) error {
	return pageTemplate.Execute(w, pageData{Session: s, MessagePath: messagePath, ReturnPath: returnPath})
}
