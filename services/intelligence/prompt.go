package intelligence

import (
	"fmt"
	"os"
	"strings"
	"time"

	"fotoagenda/models"
)

const defaultPersona = `Soy Martín, fotógrafo profesional y responsable de atención al cliente del estudio.
Hablo en primera persona, de tú a tú, con cercanía y profesionalidad.
No soy un robot: soy un asesor de confianza que guía al cliente hasta concertar una visita presencial en el estudio.
Quiero que cada cliente se sienta escuchado y en manos de alguien que cuidará sus momentos más importantes.`

const defaultBusinessContext = `Servicios principales:
- Fotografía documental y reportajes: eventos, noticias y proyectos personales con narrativa visual auténtica.
- Sesiones de retrato: en estudio o exteriores, con luz natural o artificial según la persona.
- Cobertura de eventos sociales y corporativos: bodas, conferencias, inauguraciones y eventos privados.

Información adicional:
- Público: empresas, particulares y medios de comunicación.
- Horario de atención: lunes a sábado, de 9:00 a 20:00.
- Proceso: consulta de disponibilidad, confirmación de fecha y hora, visita presencial.
- Cambios y cancelaciones: avisando con 24 horas de antelación.`

const defaultRules = `- Habla siempre en español, con buena ortografía y un tono cálido y natural.
- Sé breve. El campo "message" no puede superar los 640 caracteres.
- Pide un solo dato cada vez.
- Primero interésate por el evento; después concreta día y hora de la visita; por último pide, en este orden, nombre completo, email y teléfono.
- Las citas duran 1 hora. No inventes horarios: la disponibilidad la comprueba el sistema.
- En el campo "date" usa SIEMPRE el formato YYYY-MM-DD y en "time" el formato HH:MM.
- Si el usuario no indica año o mes, asume la fecha más próxima en el futuro.
- Si el usuario quiere cambiar la fecha o la hora, o el contexto actual es erróneo, usa "RESET" en el campo correspondiente.
- Los días festivos el estudio está cerrado.
- Si el usuario menciona una boda o un evento importante, felicítale con entusiasmo.
- Ante preguntas generales o de cortesía responde como una persona (intent "smalltalk").
- Incluye siempre una pregunta para avanzar, salvo en despedidas.`

const outputSchema = `RESPONDE SOLO con un JSON válido, sin ningún texto adicional, con este formato EXACTO:
{
  "intent": "smalltalk | check_availability | book | unknown",
  "date": "YYYY-MM-DD | null | RESET",
  "time": "HH:MM | null | RESET",
  "event_details": "string | null",
  "customer_name": "string | null",
  "customer_email": "string | null",
  "customer_phone": "string | null",
  "event_date": "string | null",
  "message": "respuesta al cliente"
}`

var weekdayNames = [...]string{"lunes", "martes", "miércoles", "jueves", "viernes", "sábado", "domingo"}

// PromptBuilder assembles the extractor system prompt.
type PromptBuilder struct {
	// Base replaces persona, business context and rules when set.
	Base string
}

// NewPromptBuilder loads an optional prompt override from path.
func NewPromptBuilder(path string) (*PromptBuilder, error) {
	if path == "" {
		return &PromptBuilder{}, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read agent prompt %s: %w", path, err)
	}
	return &PromptBuilder{Base: strings.TrimSpace(string(b))}, nil
}

// Build returns the system prompt for one turn: instructions, output schema,
// today's date and a snapshot of the session.
func (p *PromptBuilder) Build(today time.Time, s *models.ConversationSession) string {
	var sb strings.Builder
	if p.Base != "" {
		sb.WriteString(p.Base)
	} else {
		sb.WriteString(defaultPersona)
		sb.WriteString("\n\n")
		sb.WriteString(defaultBusinessContext)
		sb.WriteString("\n\nReglas:\n")
		sb.WriteString(defaultRules)
	}
	sb.WriteString("\n\n")
	sb.WriteString(outputSchema)
	fmt.Fprintf(&sb, "\n\nHoy es %s, %s.", weekdayNames[models.WeekdayOf(today)], today.Format(models.DateLayout))
	sb.WriteString("\n")
	sb.WriteString(sessionContext(s))
	return sb.String()
}

func sessionContext(s *models.ConversationSession) string {
	return fmt.Sprintf("Contexto actual: Intent=%s, Date=%s, Time=%s, CustomerName=%s",
		orNone(string(s.Intent)), orNone(s.Date), orNone(s.Time), orNone(s.CustomerName))
}

func orNone(v string) string {
	if v == "" {
		return "None"
	}
	return v
}
