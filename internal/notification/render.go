package notification

import (
	"bytes"
	"text/template"
)

// Defaults applied when a payload key is absent or its value is falsy.
const (
	defaultCreatorName = "Usuario"
	defaultCompanyName = "Induretros"
	defaultCurrency    = "COP"
)

// emailData carries the pre-formatted fields substituted into the document.
type emailData struct {
	CompanyName   string
	CreatorName   string
	ApproverName  string
	Description   string
	Amount        string
	ProviderName  string
	ProjectedDate string
	ApprovedAt    string
}

// The document is rendered with text/template on purpose: payload fields are
// interpolated without HTML escaping, preserving the established wire
// behavior for trusted backend callers. See the package doc.
var paymentTmpl = template.Must(template.New("payment-approved").Parse(paymentEmailHTML))

// BuildPaymentEmailHTML renders the payment-approved document from a
// validated payload. It is a pure function: identical payloads produce
// byte-identical HTML.
func BuildPaymentEmailHTML(payload map[string]any) string {
	data := emailData{
		CompanyName:   stringField(payload, "company_name", defaultCompanyName),
		CreatorName:   stringField(payload, "creator_name", defaultCreatorName),
		ApproverName:  stringField(payload, "approver_name", ""),
		Description:   stringField(payload, "description", ""),
		Amount:        FormatCurrency(numberField(payload, "amount"), stringField(payload, "currency", defaultCurrency)),
		ProviderName:  stringField(payload, "provider_name", ""),
		ProjectedDate: FormatDate(stringField(payload, "projected_date", "")),
		ApprovedAt:    FormatDate(stringField(payload, "approved_at", "")),
	}

	var buf bytes.Buffer
	// Cannot fail: fixed template, string-only fields.
	_ = paymentTmpl.Execute(&buf, data)
	return buf.String()
}

const paymentEmailHTML = `<!DOCTYPE html>
<html lang="es">
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 20px;">
  <div style="max-width: 600px; margin: 0 auto; background: #ffffff; border-radius: 8px; overflow: hidden; box-shadow: 0 2px 4px rgba(0,0,0,0.1);">

    <div style="background-color: #1a1a2e; padding: 24px; text-align: center;">
      <h1 style="color: #ffffff; margin: 0; font-size: 22px;">{{.CompanyName}}</h1>
    </div>

    <div style="padding: 32px 24px;">
      <h2 style="color: #333; margin-top: 0;">Hola, {{.CreatorName}}</h2>
      <p style="color: #555; font-size: 16px; line-height: 1.6;">
        Tu pago ha sido <strong style="color: #27ae60;">aprobado</strong> por <strong>{{.ApproverName}}</strong>.
      </p>

      <div style="background-color: #f8f9fa; border-radius: 6px; padding: 20px; margin: 24px 0;">
        <table style="width: 100%; border-collapse: collapse;">
          <tr>
            <td style="padding: 10px 0; color: #777; font-size: 14px;">Descripcion</td>
            <td style="padding: 10px 0; text-align: right; font-size: 14px; color: #333; font-weight: 500;">
              {{.Description}}
            </td>
          </tr>
          <tr style="border-top: 1px solid #eee;">
            <td style="padding: 10px 0; color: #777; font-size: 14px;">Monto</td>
            <td style="padding: 10px 0; text-align: right; font-size: 20px; font-weight: bold; color: #333;">
              {{.Amount}}
            </td>
          </tr>
          <tr style="border-top: 1px solid #eee;">
            <td style="padding: 10px 0; color: #777; font-size: 14px;">Proveedor</td>
            <td style="padding: 10px 0; text-align: right; font-size: 14px; color: #333;">
              {{.ProviderName}}
            </td>
          </tr>
          <tr style="border-top: 1px solid #eee;">
            <td style="padding: 10px 0; color: #777; font-size: 14px;">Fecha proyectada</td>
            <td style="padding: 10px 0; text-align: right; font-size: 14px; color: #333;">
              {{.ProjectedDate}}
            </td>
          </tr>
          <tr style="border-top: 1px solid #eee;">
            <td style="padding: 10px 0; color: #777; font-size: 14px;">Aprobado el</td>
            <td style="padding: 10px 0; text-align: right; font-size: 14px; color: #333;">
              {{.ApprovedAt}}
            </td>
          </tr>
          <tr style="border-top: 1px solid #eee;">
            <td style="padding: 10px 0; color: #777; font-size: 14px;">Estado</td>
            <td style="padding: 10px 0; text-align: right; font-size: 14px; color: #27ae60; font-weight: bold;">
              APROBADO
            </td>
          </tr>
        </table>
      </div>

      <p style="color: #555; font-size: 14px; line-height: 1.6;">
        Si tienes alguna pregunta sobre este pago, contacta al area administrativa.
      </p>
    </div>

    <div style="background-color: #f8f9fa; padding: 16px 24px; text-align: center;">
      <p style="color: #999; font-size: 12px; margin: 0;">
        &copy; {{.CompanyName}} &mdash; Este es un correo automatico, por favor no respondas a este mensaje.
      </p>
    </div>

  </div>
</body>
</html>
`
