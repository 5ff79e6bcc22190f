// Package pipeline runs one intake submission through every step, in order,
// on the caller's goroutine. Nothing is retried and nothing is rolled back: a
// failure part way leaves the earlier spreadsheet writes in place.
package pipeline

import (
	"context"
	"time"

	"ayurveda-intake/internal/common/config"
	"ayurveda-intake/internal/common/errors"
	"ayurveda-intake/internal/common/logger"
	"ayurveda-intake/internal/common/metrics"
	"ayurveda-intake/internal/common/observability"
	"ayurveda-intake/internal/models"
	em "ayurveda-intake/internal/workers/communication/email-send"
	ck "ayurveda-intake/internal/workers/intake/create-karte"
	esc "ayurveda-intake/internal/workers/intake/ensure-schema"
	rs "ayurveda-intake/internal/workers/intake/record-submission"
	ts "ayurveda-intake/internal/workers/intake/translate-submission"
	vp "ayurveda-intake/internal/workers/intake/validate-payload"
	wtr "ayurveda-intake/internal/workers/intake/write-translated-row"
)

// Submission outcomes, as reported in metrics.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

type Dependencies struct {
	Config        *config.Config
	Connector     Connector
	Generator     ts.Generator
	Logger        logger.Logger
	Observability *observability.Observability
	// NewID and Now are optional; they default to random UUIDs and the wall clock.
	NewID func() string
	Now   func() time.Time
}

// Result describes an acknowledged submission.
type Result struct {
	SubmissionID string
	State        State
	KarteTitle   string
	Degraded     bool
}

type Pipeline struct {
	cfg       *config.Config
	connector Connector
	generator ts.Generator
	logger    logger.Logger
	obs       *observability.Observability
	validator *vp.Service
	newID     func() string
	now       func() time.Time
}

func New(deps Dependencies) *Pipeline {
	log := deps.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Pipeline{
		cfg:       deps.Config,
		connector: deps.Connector,
		generator: deps.Generator,
		logger:    log,
		obs:       deps.Observability,
		validator: vp.NewService(vp.ServiceDependencies{Logger: log}, vp.DefaultConfig()),
		newID:     deps.NewID,
		now:       deps.Now,
	}
}

// Submit validates raw and, when it is acceptable, records, translates and
// files it and notifies staff. The returned error is always a
// *errors.StandardError.
func (p *Pipeline) Submit(ctx context.Context, raw interface{}) (*Result, error) {
	started := time.Now()

	res, err := p.submit(ctx, raw)

	outcome := OutcomeAccepted
	if err != nil {
		outcome = OutcomeFailed
		if errors.CodeOf(err) == errors.ErrCodeValidationFailed {
			outcome = OutcomeRejected
		}
	}
	metrics.SubmissionsTotal.WithLabelValues(outcome).Inc()
	p.obs.RecordSubmission(ctx, outcome, time.Since(started))

	if err != nil {
		return nil, errors.Normalize(err)
	}
	return res, nil
}

func (p *Pipeline) submit(ctx context.Context, raw interface{}) (*Result, error) {
	state := StateReceived

	if err := p.checkPreconditions(); err != nil {
		return nil, err
	}

	validated, err := p.validator.Execute(ctx, &vp.Input{Payload: raw})
	if err != nil {
		return nil, err
	}
	fields := validated.Fields
	state = StateValidated

	backends, err := p.connector.Connect(ctx)
	if err != nil {
		p.logFailure("connect", state, "", err)
		return nil, err
	}

	steps := p.steps(backends)
	var (
		sub        models.Submission
		translated *ts.Output
		karte      *ck.Output
	)

	run := func(name string, next State, fn func(ctx context.Context) error) error {
		if err := p.step(ctx, name, fn); err != nil {
			p.logFailure(name, state, sub.ID, err)
			return err
		}
		state = next
		return nil
	}

	if err := run("ensure_schema", StateSchemaEnsured, func(ctx context.Context) error {
		_, err := steps.schema.Execute(ctx)
		return err
	}); err != nil {
		return nil, err
	}

	if err := run("record_submission", StateRecorded, func(ctx context.Context) error {
		out, err := steps.recorder.Execute(ctx, &rs.Input{Fields: fields})
		if err != nil {
			return err
		}
		sub = out.Submission
		return nil
	}); err != nil {
		return nil, err
	}

	if err := run("translate_submission", StateTranslated, func(ctx context.Context) error {
		out, err := steps.translator.Execute(ctx, &ts.Input{Fields: fields})
		if err != nil {
			return err
		}
		translated = out
		if out.Outcome == ts.OutcomeDegraded {
			metrics.TranslationDegraded.Inc()
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if err := run("write_translated_row", StateTranslatedRowWritten, func(ctx context.Context) error {
		_, err := steps.translatedRow.Execute(ctx, &wtr.Input{
			SubmissionID: sub.ID,
			Result:       translated.Result,
		})
		return err
	}); err != nil {
		return nil, err
	}

	if err := run("create_karte", StateKarteCreated, func(ctx context.Context) error {
		out, err := steps.karte.Execute(ctx, &ck.Input{Submission: sub, Result: translated.Result})
		if err != nil {
			return err
		}
		karte = out
		return nil
	}); err != nil {
		return nil, err
	}

	if err := run("send_notification", StateNotified, func(ctx context.Context) error {
		_, err := steps.notifier.Execute(ctx, &em.Input{
			From:         p.cfg.Mail.Sender,
			To:           p.cfg.Mail.Sender,
			SubmissionID: sub.ID,
			Result:       translated.Result,
		})
		return err
	}); err != nil {
		return nil, err
	}

	state = StateAcknowledged
	p.logger.Info("Submission acknowledged", map[string]interface{}{
		"submissionId": sub.ID,
		"karte":        karte.Title,
		"degraded":     translated.Outcome == ts.OutcomeDegraded,
	})

	return &Result{
		SubmissionID: sub.ID,
		State:        state,
		KarteTitle:   karte.Title,
		Degraded:     translated.Outcome == ts.OutcomeDegraded,
	}, nil
}

// checkPreconditions fails fast, before validation and before any external
// call, in a fixed order.
func (p *Pipeline) checkPreconditions() error {
	switch {
	case p.cfg.Spreadsheet.ID == "":
		return errors.NewConfigurationMissingError("Missing SPREADSHEET_ID")
	case p.cfg.GenAI.APIKey == "":
		return errors.NewConfigurationMissingError("Missing GEMINI_API_KEY")
	case p.cfg.Mail.Sender == "":
		return errors.NewConfigurationMissingError("Missing GMAIL_SENDER")
	}
	return nil
}

// step times fn and wraps it in a span.
func (p *Pipeline) step(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	ctx, end := p.obs.StartSpan(ctx, name)
	started := time.Now()

	err := fn(ctx)

	metrics.StepDuration.WithLabelValues(name).Observe(time.Since(started).Seconds())
	if err != nil {
		metrics.StepFailures.WithLabelValues(name, string(errors.CodeOf(err))).Inc()
	}
	end(err)
	return err
}

func (p *Pipeline) logFailure(step string, reached State, submissionID string, err error) {
	stdErr := errors.Normalize(err)
	fields := map[string]interface{}{
		"step":         step,
		"stateReached": reached.String(),
		"errorCode":    string(stdErr.Code),
		"details":      stdErr.Details,
	}
	if submissionID != "" {
		fields["submissionId"] = submissionID
	}
	p.logger.WithFields(fields).WithError(err).Error("Submission step failed", nil)
}

type stepServices struct {
	schema        *esc.Service
	recorder      *rs.Service
	translator    *ts.Service
	translatedRow *wtr.Service
	karte         *ck.Service
	notifier      *em.Service
}

// steps binds every step to this submission's backends.
func (p *Pipeline) steps(b *Backends) stepServices {
	loc := p.cfg.Spreadsheet.Location()
	log := p.logger

	return stepServices{
		schema: esc.NewService(esc.ServiceDependencies{Spreadsheet: b.Spreadsheet, Logger: log}, &esc.Config{
			RawSheet:        p.cfg.Spreadsheet.RawSheet,
			TranslatedSheet: p.cfg.Spreadsheet.TranslatedSheet,
		}),
		recorder: rs.NewService(rs.ServiceDependencies{
			Spreadsheet: b.Spreadsheet,
			Logger:      log,
			NewID:       p.newID,
			Now:         p.now,
		}, &rs.Config{RawSheet: p.cfg.Spreadsheet.RawSheet, Location: loc}),
		translator: ts.NewService(ts.ServiceDependencies{Generator: p.generator, Logger: log}, ts.DefaultConfig()),
		translatedRow: wtr.NewService(wtr.ServiceDependencies{
			Spreadsheet: b.Spreadsheet,
			Logger:      log,
			Now:         p.now,
		}, &wtr.Config{TranslatedSheet: p.cfg.Spreadsheet.TranslatedSheet, Location: loc}),
		karte:    ck.NewService(ck.ServiceDependencies{Spreadsheet: b.Spreadsheet, Logger: log}, ck.DefaultConfig()),
		notifier: em.NewService(em.ServiceDependencies{Transport: b.Transport, Logger: log}, em.DefaultConfig()),
	}
}
