package intelligence

import (
	"fmt"
	"strings"

	"fotoagenda/models"
)

// User-facing replies. The studio works in Spanish.
const (
	msgAskDateCheck     = "¿Para qué fecha quieres consultar la disponibilidad?"
	msgAskDateBook      = "¿Qué día te vendría bien?"
	msgAskTime          = "¿A qué hora te vendría mejor?"
	msgAskName          = "¡Estupendo! Para confirmar, ¿a nombre de quién hago la reserva?"
	msgAskEmail         = "Perfecto, ¿me podrías dar un email de contacto?"
	msgAskPhone         = "Ya casi lo tenemos. ¿Y un teléfono?"
	msgBookingConfirmed = "¡Cita confirmada! He anotado todos los detalles. Recibirás una confirmación en breve. ¡Hablamos pronto!"
	msgCommitFailed     = "Lo siento, hubo un error interno al guardar la cita. Por favor, inténtalo de nuevo."
	msgProcessingError  = "Lo siento, no he podido procesar tu mensaje. ¿Puedes repetirlo?"
	msgFallback         = "¿Puedes concretar un poco más?"
)

func msgSlotsAvailable(slots []models.ClockTime) string {
	return fmt.Sprintf("Hay disponibilidad a las %s. ¿Cuál prefieres?", joinSlots(slots))
}

func msgAgendaFull(date string) string {
	return fmt.Sprintf("Lo siento, la agenda para el %s está completa.", date)
}

func msgNoSlotsLeft(date string) string {
	return fmt.Sprintf("Lo siento, no quedan huecos libres para el %s. ¿Te viene bien otro día?", date)
}

func msgPastCheck(date string) string {
	return fmt.Sprintf("No puedo darte disponibilidad para el pasado (%s). ¿Qué otro día te interesa?", date)
}

func msgPastBook(date string) string {
	return fmt.Sprintf("No es posible reservar en el pasado (%s). Por favor, elige una fecha futura.", date)
}

func msgHolidayCheck(date string) string {
	return fmt.Sprintf("El %s es festivo. ¿Buscas otro día?", date)
}

func msgHolidayBook(date string) string {
	return fmt.Sprintf("El %s es festivo y estamos cerrados. ¿Qué otro día te viene bien?", date)
}

func msgClosedNext(date, next string) string {
	return fmt.Sprintf("El %s estamos cerrados. Nuestro próximo día abierto es el %s. ¿Te encaja?", date, next)
}

func msgClosed(date string) string {
	return fmt.Sprintf("El %s estamos cerrados y no tenemos días abiertos en la próxima semana. ¿Quieres probar con otra fecha?", date)
}

func msgSlotTaken(date string, free []models.ClockTime) string {
	return fmt.Sprintf("Ese horario ya no está disponible. Para el %s quedan libres: %s.", date, joinSlots(free))
}

func msgOutsideHours(at, date string, free []models.ClockTime) string {
	return fmt.Sprintf("A las %s no tenemos citas. Para el %s quedan libres: %s.", at, date, joinSlots(free))
}

func msgInvalidField(field, value string) string {
	if field == "time" {
		return fmt.Sprintf("No he entendido la hora \"%s\". ¿Me la dices como HH:MM, por ejemplo 17:00?", value)
	}
	return fmt.Sprintf("No he entendido la fecha \"%s\". ¿Me dices el día, el mes y el año?", value)
}

func joinSlots(slots []models.ClockTime) string {
	return strings.Join(models.FormatSlots(slots), ", ")
}

// orFallback prefers the extractor's own wording when it gave one.
func orFallback(extracted, fallback string) string {
	if strings.TrimSpace(extracted) != "" {
		return extracted
	}
	return fallback
}
