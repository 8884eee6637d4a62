package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"readydoc-bot/internal/constant"
	"readydoc-bot/internal/entity"
	"readydoc-bot/internal/pkg/logger"
	"readydoc-bot/internal/repository/contract"
	"readydoc-bot/pkg/docgen"
	"readydoc-bot/pkg/events"
	"readydoc-bot/pkg/placeholder"
)

// Reply is one outbound message the chat layer should deliver. The dialog
// service stays free of any Telegram types so the flow is testable in
// isolation.
type Reply struct {
	Text            string
	Keyboard        string // constant.Keyboard*
	DocumentPath    string // when set, deliver as a file attachment
	DocumentCaption string
}

func textReply(text, keyboard string) Reply {
	return Reply{Text: text, Keyboard: keyboard}
}

// IDialogService drives the document-assembly conversation.
type IDialogService interface {
	// Start greets the user and opens a fresh session.
	Start(ctx context.Context, userID, chatID int64) ([]Reply, error)

	// Create opens (or reopens) a session awaiting the document description.
	Create(ctx context.Context, userID, chatID int64) ([]Reply, error)

	// Cancel aborts the active session, if any.
	Cancel(ctx context.Context, userID int64) ([]Reply, error)

	// HandleText routes a free-text message to the current step's handler.
	HandleText(ctx context.Context, userID, chatID int64, text string) ([]Reply, error)
}

type stepHandler func(ctx context.Context, session *entity.DialogSession, text string) ([]Reply, error)

type dialogService struct {
	sessions  contract.SessionRepository
	documents IDocumentService
	exporter  *docgen.Exporter
	publisher IPublisherService
	logger    logger.ILogger

	maxDescriptionLen int
	handlers          map[string]stepHandler
}

func NewDialogService(
	sessions contract.SessionRepository,
	documents IDocumentService,
	exporter *docgen.Exporter,
	publisher IPublisherService,
	log logger.ILogger,
	maxDescriptionLen int,
) IDialogService {
	ds := &dialogService{
		sessions:          sessions,
		documents:         documents,
		exporter:          exporter,
		publisher:         publisher,
		logger:            log,
		maxDescriptionLen: maxDescriptionLen,
	}

	// Explicit transition table: one handler per step a session can be
	// parked on between messages.
	ds.handlers = map[string]stepHandler{
		constant.StepAwaitingDescription:   ds.handleDescription,
		constant.StepAwaitingClarification: ds.handleClarification,
		constant.StepFillingVariables:      ds.handleFilling,
		constant.StepConfirming:            ds.handleConfirming,
		constant.StepAwaitingAmendment:     ds.handleAmendment,
	}

	return ds
}

func (ds *dialogService) Start(ctx context.Context, userID, chatID int64) ([]Reply, error) {
	if err := ds.openSession(ctx, userID, chatID); err != nil {
		return nil, err
	}
	return []Reply{textReply(constant.MsgGreeting, constant.KeyboardMain)}, nil
}

func (ds *dialogService) Create(ctx context.Context, userID, chatID int64) ([]Reply, error) {
	if err := ds.openSession(ctx, userID, chatID); err != nil {
		return nil, err
	}
	return []Reply{textReply(constant.MsgAskDescription, constant.KeyboardMain)}, nil
}

func (ds *dialogService) openSession(ctx context.Context, userID, chatID int64) error {
	session := &entity.DialogSession{
		UserID:    userID,
		ChatID:    chatID,
		Step:      constant.StepAwaitingDescription,
		Filled:    map[string]string{},
		CreatedAt: time.Now(),
	}
	if err := ds.sessions.Save(ctx, session); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	return nil
}

func (ds *dialogService) Cancel(ctx context.Context, userID int64) ([]Reply, error) {
	if err := ds.sessions.Delete(ctx, userID); err != nil {
		return nil, fmt.Errorf("clear session: %w", err)
	}
	ds.logger.Info("DialogService", "Session cancelled", map[string]interface{}{"user_id": userID})
	if ds.publisher != nil {
		ds.publisher.PublishLifecycle(ctx, constant.SubjectSessionCancelled, map[string]interface{}{
			"user_id": userID,
		})
	}
	return []Reply{textReply(constant.MsgCancelled, constant.KeyboardMain)}, nil
}

func (ds *dialogService) HandleText(ctx context.Context, userID, chatID int64, text string) ([]Reply, error) {
	session, found, err := ds.sessions.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !found {
		return []Reply{textReply(constant.MsgNoActiveSession, constant.KeyboardMain)}, nil
	}
	session.ChatID = chatID

	handler, ok := ds.handlers[session.Step]
	if !ok {
		// A session parked on a transient step means a previous handler
		// crashed mid-transition. Treat it like a broken session.
		ds.logger.Warn("DialogService", "Message in unexpected step", map[string]interface{}{
			"user_id": userID, "step": session.Step,
		})
		return ds.fail(ctx, session, fmt.Errorf("unexpected step %s", session.Step))
	}

	return handler(ctx, session, strings.TrimSpace(text))
}

// awaiting_description: the free-text request arrives.
func (ds *dialogService) handleDescription(ctx context.Context, session *entity.DialogSession, text string) ([]Reply, error) {
	if utf8.RuneCountInString(text) > ds.maxDescriptionLen {
		// Length guard recovers locally: state unchanged, one warning.
		return []Reply{textReply(constant.MsgDescriptionTooLong, constant.KeyboardMain)}, nil
	}

	session.Description = text

	question, needed, err := ds.documents.Clarify(ctx, text)
	if err != nil {
		return ds.fail(ctx, session, err)
	}
	if needed {
		session.Step = constant.StepAwaitingClarification
		session.Question = question
		if err := ds.sessions.Save(ctx, session); err != nil {
			return nil, fmt.Errorf("save session: %w", err)
		}
		return []Reply{textReply(constant.MsgClarifyPrefix+question, constant.KeyboardMain)}, nil
	}

	session.Mode = constant.ModeAuto
	return ds.draft(ctx, session, []Reply{textReply(constant.MsgChecking, constant.KeyboardRemove)})
}

// awaiting_clarification: the answer to the single follow-up question.
func (ds *dialogService) handleClarification(ctx context.Context, session *entity.DialogSession, text string) ([]Reply, error) {
	session.Answers = append(session.Answers, entity.Answer{
		Question: session.Question,
		Reply:    text,
	})
	session.Question = ""
	session.Mode = constant.ModeClarified

	return ds.draft(ctx, session, []Reply{textReply(constant.MsgProcessingClarification, constant.KeyboardRemove)})
}

// draft runs the generation and review calls, extracts placeholders and
// moves the session to filling or confirming.
func (ds *dialogService) draft(ctx context.Context, session *entity.DialogSession, replies []Reply) ([]Reply, error) {
	session.Step = constant.StepGenerating
	if ds.publisher != nil {
		ds.publisher.PublishLifecycle(ctx, constant.SubjectGenerationStarted, map[string]interface{}{
			"user_id": session.UserID, "mode": session.Mode,
		})
	}

	text, cached, err := ds.documents.Draft(ctx, session.Description, session.Answers)
	if err != nil {
		return ds.fail(ctx, session, err)
	}
	session.DocumentText = text
	if cached {
		session.Mode = constant.ModeCached
		replies = append(replies, textReply(constant.MsgCacheHit, constant.KeyboardNone))
	}

	session.Step = constant.StepReviewing
	notes, err := ds.documents.Review(ctx, text)
	if err != nil {
		return ds.fail(ctx, session, err)
	}
	session.ReviewNotes = notes

	session.Placeholders = placeholder.Extract(text)
	if len(session.Placeholders) == 0 {
		return ds.toConfirming(ctx, session, replies)
	}

	// Role classification is advisory: a failure degrades to generic
	// prompts and is only visible in the logs.
	roleMap, err := ds.documents.Classify(ctx, text, session.Placeholders)
	if err != nil {
		ds.logger.Warn("DialogService", "Role classification degraded", map[string]interface{}{
			"user_id": session.UserID, "error": err.Error(),
		})
	}
	session.Roles = roleMap.Roles
	session.FieldHints = roleMap.FieldDescriptions
	session.DocumentType = roleMap.DocumentType

	session.Step = constant.StepFillingVariables
	session.VarIndex = 0
	if err := ds.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	replies = append(replies, textReply(constant.MsgFillIntro, constant.KeyboardSkip))
	replies = append(replies, ds.fieldPrompt(session))
	return replies, nil
}

// fieldPrompt builds the question for the placeholder the loop is parked on.
func (ds *dialogService) fieldPrompt(session *entity.DialogSession) Reply {
	field, ok := session.CurrentField()
	if !ok {
		return textReply(constant.MsgConfirmIntro, constant.KeyboardConfirm)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "(%d/%d) Поле «%s»", session.VarIndex+1, len(session.Placeholders), field)
	if role, ok := session.RoleOf(field); ok {
		fmt.Fprintf(&b, " — сторона: %s", role)
	}
	b.WriteString("\n")
	if hint, ok := session.FieldHints[field]; ok && hint != "" {
		b.WriteString(hint)
		b.WriteString("\n")
	}
	b.WriteString(placeholder.RuleFor(field).Prompt)

	return textReply(b.String(), constant.KeyboardSkip)
}

// filling_variables: one value (or a skip) per message.
func (ds *dialogService) handleFilling(ctx context.Context, session *entity.DialogSession, text string) ([]Reply, error) {
	field, ok := session.CurrentField()
	if !ok {
		return ds.toConfirming(ctx, session, nil)
	}

	if text == constant.ButtonSkip || strings.EqualFold(text, "/skip") {
		session.Skipped = append(session.Skipped, field)
	} else {
		rule := placeholder.RuleFor(field)
		if err := rule.Validate(text); err != nil {
			// Validation failure recovers locally: same index, re-prompt.
			return []Reply{textReply(err.Error(), constant.KeyboardSkip)}, nil
		}
		session.Filled[field] = text
	}

	session.VarIndex++
	if _, more := session.CurrentField(); !more {
		return ds.toConfirming(ctx, session, nil)
	}

	if err := ds.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return []Reply{ds.fieldPrompt(session)}, nil
}

func (ds *dialogService) toConfirming(ctx context.Context, session *entity.DialogSession, replies []Reply) ([]Reply, error) {
	session.Step = constant.StepConfirming
	if err := ds.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return append(replies, textReply(constant.MsgConfirmIntro, constant.KeyboardConfirm)), nil
}

// confirming: finalize or branch into an amendment.
func (ds *dialogService) handleConfirming(ctx context.Context, session *entity.DialogSession, text string) ([]Reply, error) {
	switch text {
	case constant.ButtonConfirm:
		return ds.finalize(ctx, session)
	case constant.ButtonAmend:
		session.Step = constant.StepAwaitingAmendment
		if err := ds.sessions.Save(ctx, session); err != nil {
			return nil, fmt.Errorf("save session: %w", err)
		}
		return []Reply{textReply(constant.MsgAskAmendment, constant.KeyboardRemove)}, nil
	default:
		return []Reply{textReply(constant.MsgUseButtons, constant.KeyboardConfirm)}, nil
	}
}

// awaiting_amendment: the topic of the section to append.
func (ds *dialogService) handleAmendment(ctx context.Context, session *entity.DialogSession, text string) ([]Reply, error) {
	amended, err := ds.documents.Amend(ctx, session.DocumentText, text)
	if err != nil {
		return ds.fail(ctx, session, err)
	}
	session.DocumentText = amended

	// A new section may introduce new placeholders; queue the unfilled ones.
	all := placeholder.Extract(amended)
	pending := make([]string, 0, len(all))
	for _, name := range all {
		if _, done := session.Filled[name]; done {
			continue
		}
		if contains(session.Skipped, name) {
			continue
		}
		pending = append(pending, name)
	}

	if len(pending) > 0 {
		session.Placeholders = pending
		session.VarIndex = 0
		session.Step = constant.StepFillingVariables
		if err := ds.sessions.Save(ctx, session); err != nil {
			return nil, fmt.Errorf("save session: %w", err)
		}
		return []Reply{textReply(constant.MsgFillIntro, constant.KeyboardSkip), ds.fieldPrompt(session)}, nil
	}

	return ds.toConfirming(ctx, session, nil)
}

// finalize substitutes the collected values, exports the file and closes the
// session.
func (ds *dialogService) finalize(ctx context.Context, session *entity.DialogSession) ([]Reply, error) {
	final := placeholder.Substitute(session.DocumentText, session.Filled)

	var replies []Reply
	if remaining := placeholder.Extract(final); len(remaining) > 0 {
		replies = append(replies, textReply(
			constant.MsgUnfilledWarningPrefix+strings.Join(remaining, ", "),
			constant.KeyboardNone,
		))
	}

	path, err := ds.exporter.Export(final, session.UserID)
	if err != nil {
		return ds.fail(ctx, session, err)
	}

	if ds.publisher != nil {
		event := &events.DocumentFinalized{
			UserID:        session.UserID,
			DocumentType:  session.DocumentType,
			Mode:          session.Mode,
			FilledValues:  session.Filled,
			SkippedFields: session.Skipped,
			FilePath:      path,
			FinalizedAt:   time.Now(),
		}
		if err := ds.publisher.PublishDocumentFinalized(ctx, event); err != nil {
			ds.logger.Warn("DialogService", "Finalized event publish failed", map[string]interface{}{
				"user_id": session.UserID, "error": err.Error(),
			})
		}
	}

	if err := ds.sessions.Delete(ctx, session.UserID); err != nil {
		return nil, fmt.Errorf("clear session: %w", err)
	}

	replies = append(replies,
		Reply{DocumentPath: path, DocumentCaption: constant.MsgDocumentReady},
		textReply(constant.MsgReviewPrefix+session.ReviewNotes, constant.KeyboardMain),
	)

	ds.logger.Info("DialogService", "Document finalized", map[string]interface{}{
		"user_id": session.UserID, "doc_type": session.DocumentType, "mode": session.Mode,
	})
	return replies, nil
}

// fail logs the error, clears the session and sends the generic apology.
// There is no retry: from the user's perspective the attempt is over.
func (ds *dialogService) fail(ctx context.Context, session *entity.DialogSession, cause error) ([]Reply, error) {
	ds.logger.Error("DialogService", "Dialog step failed", map[string]interface{}{
		"user_id": session.UserID, "step": session.Step, "error": cause.Error(),
	})
	if ds.publisher != nil {
		ds.publisher.PublishLifecycle(ctx, constant.SubjectGenerationFailed, map[string]interface{}{
			"user_id": session.UserID, "step": session.Step, "error": cause.Error(),
		})
	}
	if err := ds.sessions.Delete(ctx, session.UserID); err != nil {
		ds.logger.Error("DialogService", "Session cleanup failed", map[string]interface{}{
			"user_id": session.UserID, "error": err.Error(),
		})
	}
	return []Reply{textReply(constant.MsgGenericError, constant.KeyboardMain)}, nil
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
