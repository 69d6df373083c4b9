package intelligence

import (
	"context"
	"errors"
	"time"

	"fotoagenda/models"
	"fotoagenda/services/availability"
	"fotoagenda/services/booking"
	"fotoagenda/utils"

	"go.uber.org/zap"
)

// turnResult is the outcome of one dispatch. When persist is false the
// stored session is left exactly as it was before the turn.
type turnResult struct {
	reply   string
	status  string
	persist bool
}

func reply(text, status string) turnResult {
	return turnResult{reply: text, status: status, persist: true}
}

// ProcessMessage merges the extractor output into the session, consults the
// slot engine when needed and either asks for the next missing field or
// commits the booking. Turns of the same session never run concurrently.
func (s *DefaultAIService) ProcessMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	logger := utils.GetLogger().With(
		zap.String("businessID", req.BusinessID), zap.String("sessionID", req.SessionID))

	key := SessionKey(req.BusinessID, req.SessionID)
	unlock := s.Locker.Lock(key)
	defer unlock()

	stored, err := s.Sessions.Get(ctx, key)
	if err != nil {
		logger.Error("Failed to load session", zap.Error(err))
		return s.respond(turnResult{reply: msgProcessingError, status: models.StatusError}), nil
	}

	session := stored.Clone()
	result := s.turn(ctx, logger, req, session)

	if result.persist {
		session.UpdatedAt = s.Now().UTC()
		if err := s.Sessions.Put(ctx, key, session); err != nil {
			logger.Error("Failed to save session", zap.Error(err))
			return s.respond(turnResult{reply: msgProcessingError, status: models.StatusError}), nil
		}
	}
	return s.respond(result), nil
}

func (s *DefaultAIService) respond(r turnResult) *models.ChatResponse {
	utils.GetMetrics().ChatTurns.WithLabelValues(r.status).Inc()
	return &models.ChatResponse{Reply: r.reply, Status: r.status}
}

func (s *DefaultAIService) turn(ctx context.Context, logger *zap.Logger, req models.ChatRequest, session *models.ConversationSession) turnResult {
	userTurn := models.Turn{Role: models.RoleUser, Content: req.Message}
	turns := append(append([]models.Turn(nil), session.History...), userTurn)

	raw, err := s.extract(ctx, s.Prompt.Build(s.Engine.Today(), session), turns)
	if err != nil {
		logger.Error("Intent extractor failed", zap.Error(err))
		return turnResult{reply: msgProcessingError, status: models.StatusError}
	}

	ext, err := ParseExtraction(raw)
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			logger.Info("Extractor returned a malformed field", zap.String("field", vErr.Field), zap.String("value", vErr.Value))
			return turnResult{reply: msgInvalidField(vErr.Field, vErr.Value), status: models.StatusNeedInfo}
		}
		logger.Warn("Unparseable extractor output", zap.String("raw", raw), zap.Error(err))
		return turnResult{reply: msgProcessingError, status: models.StatusError}
	}

	// The raw JSON is kept so the model sees its own format on the next turn.
	session.AppendHistory(userTurn, models.Turn{Role: models.RoleAssistant, Content: raw})
	mergeExtraction(session, ext)

	if session.Intent == models.IntentCheckAvailability && session.Date != "" && session.Time != "" {
		session.Intent = models.IntentBook
		session.SlotConfirmed = false
	}

	logger.Debug("Session updated",
		zap.String("intent", string(session.Intent)), zap.String("date", session.Date),
		zap.String("time", session.Time), zap.Bool("slotConfirmed", session.SlotConfirmed))

	switch session.Intent {
	case models.IntentCheckAvailability:
		return s.checkAvailability(ctx, logger, req.BusinessID, session, ext)
	case models.IntentBook:
		return s.book(ctx, logger, req.BusinessID, session, ext)
	default:
		return reply(orFallback(ext.Message, msgFallback), models.StatusSuccess)
	}
}

func (s *DefaultAIService) extract(ctx context.Context, system string, turns []models.Turn) (string, error) {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := s.LLM.GenerateContent(ctx, system, turns)
	utils.GetMetrics().LLMDuration.Observe(time.Since(start).Seconds())
	return raw, err
}

// mergeExtraction applies the tagged updates. Any change to the date or the
// time invalidates a previous slot check.
func mergeExtraction(session *models.ConversationSession, ext models.Extraction) {
	if ext.Intent.Op == models.Set {
		session.Intent = models.Intent(ext.Intent.Value)
	} else if ext.Intent.Op == models.Clear {
		session.Intent = models.IntentNone
	}

	date := ext.Date.Apply(session.Date)
	at := ext.Time.Apply(session.Time)
	if date != session.Date || at != session.Time {
		session.SlotConfirmed = false
	}
	session.Date, session.Time = date, at

	session.EventDetails = ext.EventDetails.Apply(session.EventDetails)
	session.CustomerName = ext.CustomerName.Apply(session.CustomerName)
	session.CustomerEmail = ext.CustomerEmail.Apply(session.CustomerEmail)
	session.CustomerPhone = ext.CustomerPhone.Apply(session.CustomerPhone)
	session.EventDate = ext.EventDate.Apply(session.EventDate)
}

func (s *DefaultAIService) checkAvailability(
	ctx context.Context,
	logger *zap.Logger,
	businessID string,
	session *models.ConversationSession,
	ext models.Extraction,
) turnResult {
	if session.Date == "" {
		return reply(orFallback(ext.Message, msgAskDateCheck), models.StatusNeedInfo)
	}

	avail, res, ok := s.check(ctx, logger, businessID, session)
	if !ok {
		return res
	}

	switch avail.Reason {
	case availability.ReasonOpen:
		sorted := availability.SortByProximity(avail.Slots, availability.PreferredHour)
		return reply(msgSlotsAvailable(sorted), models.StatusSuccess)
	case availability.ReasonFullyBooked:
		return reply(msgAgendaFull(session.Date), models.StatusSuccess)
	case availability.ReasonPast:
		return reply(msgPastCheck(session.Date), models.StatusNeedInfo)
	case availability.ReasonHoliday:
		return reply(msgHolidayCheck(session.Date), models.StatusNeedInfo)
	default:
		return s.closedDay(session, avail)
	}
}

func (s *DefaultAIService) book(
	ctx context.Context,
	logger *zap.Logger,
	businessID string,
	session *models.ConversationSession,
	ext models.Extraction,
) turnResult {
	if session.Date == "" {
		return reply(orFallback(ext.Message, msgAskDateBook), models.StatusNeedInfo)
	}
	if session.Time == "" {
		return reply(orFallback(ext.Message, msgAskTime), models.StatusNeedInfo)
	}

	if !session.SlotConfirmed {
		if res, ok := s.confirmSlot(ctx, logger, businessID, session); !ok {
			return res
		}
		session.SlotConfirmed = true
	}

	switch {
	case session.CustomerName == "":
		return reply(orFallback(ext.Message, msgAskName), models.StatusNeedInfo)
	case session.CustomerEmail == "":
		return reply(orFallback(ext.Message, msgAskEmail), models.StatusNeedInfo)
	case session.CustomerPhone == "":
		return reply(orFallback(ext.Message, msgAskPhone), models.StatusNeedInfo)
	}

	return s.commit(ctx, logger, businessID, session)
}

// confirmSlot runs the availability cascade for the requested slot once per
// booking attempt. On rejection the requested time is cleared.
func (s *DefaultAIService) confirmSlot(
	ctx context.Context,
	logger *zap.Logger,
	businessID string,
	session *models.ConversationSession,
) (turnResult, bool) {
	avail, res, ok := s.check(ctx, logger, businessID, session)
	if !ok {
		return res, false
	}

	date := session.Date
	switch avail.Reason {
	case availability.ReasonPast:
		session.Time = ""
		return reply(msgPastBook(date), models.StatusNeedInfo), false
	case availability.ReasonHoliday:
		session.Time = ""
		return reply(msgHolidayBook(date), models.StatusNeedInfo), false
	case availability.ReasonClosed:
		session.Time = ""
		return s.closedDay(session, avail), false
	case availability.ReasonFullyBooked:
		session.Time = ""
		return reply(msgNoSlotsLeft(date), models.StatusNeedInfo), false
	}

	requested, err := models.ParseClockTime(session.Time)
	if err != nil {
		bad := session.Time
		session.Time = ""
		return reply(msgInvalidField("time", bad), models.StatusNeedInfo), false
	}
	if availability.Contains(avail.Slots, requested) {
		return turnResult{}, true
	}

	session.Time = ""
	if availability.Contains(avail.Grid, requested) {
		return reply(msgSlotTaken(date, avail.Slots), models.StatusNeedInfo), false
	}
	return reply(msgOutsideHours(requested.String(), date, avail.Slots), models.StatusNeedInfo), false
}

// check parses the session date and runs the engine. ok is false when res
// already holds the reply.
func (s *DefaultAIService) check(
	ctx context.Context,
	logger *zap.Logger,
	businessID string,
	session *models.ConversationSession,
) (availability.Availability, turnResult, bool) {
	date, err := models.ParseDate(session.Date, s.Engine.Location)
	if err != nil {
		bad := session.Date
		session.Date = ""
		session.SlotConfirmed = false
		return availability.Availability{}, reply(msgInvalidField("date", bad), models.StatusNeedInfo), false
	}

	avail, err := s.Engine.Check(ctx, businessID, date)
	if err != nil {
		logger.Error("Availability check failed", zap.Error(err))
		return availability.Availability{}, reply(msgProcessingError, models.StatusError), false
	}
	return avail, turnResult{}, true
}

// closedDay folds the next open day into the session so the next turn
// proposes it instead of looping on the closed date.
func (s *DefaultAIService) closedDay(session *models.ConversationSession, avail availability.Availability) turnResult {
	closed := session.Date
	if !avail.HasNextOpen {
		return reply(msgClosed(closed), models.StatusNeedInfo)
	}
	session.Date = avail.NextOpen.Format(models.DateLayout)
	session.SlotConfirmed = false
	return reply(msgClosedNext(closed, session.Date), models.StatusNeedInfo)
}

func (s *DefaultAIService) commit(
	ctx context.Context,
	logger *zap.Logger,
	businessID string,
	session *models.ConversationSession,
) turnResult {
	created, err := s.Bookings.Create(ctx, booking.Draft{
		BusinessID:    businessID,
		Date:          session.Date,
		StartTime:     session.Time,
		CustomerName:  session.CustomerName,
		CustomerEmail: session.CustomerEmail,
		CustomerPhone: session.CustomerPhone,
		EventDate:     session.EventDate,
		EventDetails:  session.EventDetails,
	})

	switch {
	case errors.Is(err, booking.ErrSlotTaken):
		date := session.Date
		session.Time = ""
		session.SlotConfirmed = false
		avail, res, ok := s.check(ctx, logger, businessID, session)
		if !ok {
			return res
		}
		if len(avail.Slots) == 0 {
			return reply(msgNoSlotsLeft(date), models.StatusNeedInfo)
		}
		return reply(msgSlotTaken(date, avail.Slots), models.StatusNeedInfo)

	case err != nil:
		logger.Error("Booking commit failed", zap.Error(err))
		return reply(msgCommitFailed, models.StatusError)
	}

	if s.Notifier != nil {
		s.Notifier.NotifyBookingConfirmed(*created)
	}

	*session = models.ConversationSession{CustomerName: session.CustomerName}
	return reply(msgBookingConfirmed, models.StatusSuccess)
}
