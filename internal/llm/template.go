package llm

import "context"

// DefaultTemplate is the canned explanation returned by TemplateProvider.
const DefaultTemplate = "شرح مبسّط:\n" +
	"- تعريف المفهوم.\n" +
	"- مثال واقعي قصير.\n" +
	"- خطوة بخطوة لحل نموذج مشابه.\n" +
	"نصيحة: إذا شعرت بصعوبة، ارجع للتعريف وجرّب مثالًا أسهل."

// TemplateProvider ignores its input and returns a fixed explanation.
// It lets the tutor run without any external service.
type TemplateProvider struct {
	text string
}

// NewTemplateProvider creates a TemplateProvider. An empty text selects
// DefaultTemplate.
func NewTemplateProvider(text string) *TemplateProvider {
	if text == "" {
		text = DefaultTemplate
	}
	return &TemplateProvider{text: text}
}

// Generate returns the configured template. It never fails.
func (p *TemplateProvider) Generate(_ context.Context, _ Request) (*Response, error) {
	return &Response{
		Text:       p.text,
		Model:      p.ModelID(),
		StopReason: "end",
	}, nil
}

// ModelID returns "dummy".
func (p *TemplateProvider) ModelID() string {
	return "dummy"
}
