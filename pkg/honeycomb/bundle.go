package honeycomb

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// StepKind tags a bundle step variant.
type StepKind string

// Bundle step kinds.
const (
	StepCreateDerivedColumn StepKind = "create_derived_column"
	StepReferenceSLI        StepKind = "reference_existing_sli"
	StepCreateSLO           StepKind = "create_slo"
	StepCreateBurnAlert     StepKind = "create_burn_alert"
	StepCreateTrigger       StepKind = "create_trigger"
)

// Step is one entry in a bundle's creation plan. Only the fields for its
// Kind are set. Steps may reference outputs of strictly earlier steps; the
// executor resolves those references at run time.
type Step struct {
	Kind StepKind

	// StepCreateDerivedColumn
	DerivedColumn   *DerivedColumnCreateRequest
	EnvironmentWide bool

	// StepReferenceSLI
	SLIAlias string

	// StepCreateSLO
	SLO *SLOCreateRequest

	// StepCreateBurnAlert
	BurnAlert *BurnAlertCreateRequest

	// StepCreateTrigger
	Trigger *TriggerCreateRequest

	// Target datasets. For StepCreateTrigger exactly one; for
	// StepCreateDerivedColumn ignored when EnvironmentWide is set.
	Datasets []string
}

// Bundle is an ordered multi-resource creation plan produced by the trigger
// and SLO builders.
type Bundle struct {
	Steps []Step
}

// BundleResult maps each target dataset slug (or the environment-wide
// sentinel) to the top-level resource created for it. The result is built
// fresh per execution and never cached.
type BundleResult struct {
	// SLOs created per dataset slug, for SLO bundles.
	SLOs map[string]*SLO
	// Triggers created per dataset slug, for trigger bundles.
	Triggers map[string]*Trigger
	// BurnAlerts created across all datasets, in creation order.
	BurnAlerts []*BurnAlert
	// SLIAlias is the derived column alias the SLOs reference, whether
	// created by this bundle or referenced as existing.
	SLIAlias string
	// DerivedColumns created by this bundle, keyed by dataset slug.
	DerivedColumns map[string]*DerivedColumn
}

// undoAction is a compensating delete pushed after each successful create.
type undoAction struct {
	description string
	run         func(ctx context.Context) error
}

// BundleExecutor applies a bundle's steps in plan order against the remote
// service. Steps run sequentially: later steps consume identifiers produced
// by earlier ones. On a mid-bundle failure the executor runs the
// accumulated undo actions in reverse order, logging undo failures without
// letting them mask the original error.
type BundleExecutor struct {
	client Client
	logger Logger
}

// NewBundleExecutor creates an executor bound to a client.
func NewBundleExecutor(client Client, logger Logger) *BundleExecutor {
	return &BundleExecutor{
		client: client,
		logger: logger,
	}
}

// Execute runs the bundle and returns the per-dataset results.
func (e *BundleExecutor) Execute(ctx context.Context, bundle *Bundle) (*BundleResult, error) {
	if bundle == nil || len(bundle.Steps) == 0 {
		return nil, ErrEmptyBundle
	}

	runID := uuid.NewString()
	result := &BundleResult{
		SLOs:           make(map[string]*SLO),
		Triggers:       make(map[string]*Trigger),
		DerivedColumns: make(map[string]*DerivedColumn),
	}

	var undoStack []undoAction

	for _, step := range bundle.Steps {
		err := e.executeStep(ctx, step, result, &undoStack)
		if err != nil {
			e.rollback(ctx, runID, undoStack)

			return nil, err
		}
	}

	return result, nil
}

func (e *BundleExecutor) executeStep(ctx context.Context, step Step, result *BundleResult, undoStack *[]undoAction) error {
	switch step.Kind {
	case StepReferenceSLI:
		// Reference-only: the alias is carried forward with no network call.
		result.SLIAlias = step.SLIAlias

		return nil
	case StepCreateDerivedColumn:
		return e.createDerivedColumns(ctx, step, result, undoStack)
	case StepCreateSLO:
		return e.createSLOs(ctx, step, result, undoStack)
	case StepCreateBurnAlert:
		return e.createBurnAlerts(ctx, step, result, undoStack)
	case StepCreateTrigger:
		return e.createTrigger(ctx, step, result, undoStack)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedStepKind, step.Kind)
	}
}

func (e *BundleExecutor) createDerivedColumns(ctx context.Context, step Step, result *BundleResult, undoStack *[]undoAction) error {
	targets := step.Datasets
	if step.EnvironmentWide {
		targets = []string{EnvironmentWideDataset}
	}

	// Dataset-scoped SLIs are created once per dataset even when identical;
	// only environment-wide columns are shared.
	for _, dataset := range targets {
		dataset := dataset
		created, err := e.client.DerivedColumns().Create(ctx, dataset, step.DerivedColumn)
		if err != nil {
			return fmt.Errorf("creating derived column %q in %s: %w", step.DerivedColumn.Alias, dataset, err)
		}

		result.DerivedColumns[dataset] = created
		result.SLIAlias = created.Alias

		id := created.ID
		*undoStack = append(*undoStack, undoAction{
			description: fmt.Sprintf("delete derived column %s in %s", id, dataset),
			run: func(ctx context.Context) error {
				return e.client.DerivedColumns().Delete(ctx, dataset, id)
			},
		})
	}

	return nil
}

func (e *BundleExecutor) createSLOs(ctx context.Context, step Step, result *BundleResult, undoStack *[]undoAction) error {
	for _, dataset := range step.Datasets {
		dataset := dataset
		request := *step.SLO
		if request.SLI.Alias == "" {
			request.SLI.Alias = result.SLIAlias
		}

		if request.SLI.Alias == "" {
			return fmt.Errorf("%w: SLO for %s has no SLI alias", ErrStepOutOfOrder, dataset)
		}

		created, err := e.client.SLOs().Create(ctx, dataset, &request)
		if err != nil {
			return fmt.Errorf("creating SLO %q in %s: %w", step.SLO.Name, dataset, err)
		}

		result.SLOs[dataset] = created

		id := created.ID
		*undoStack = append(*undoStack, undoAction{
			description: fmt.Sprintf("delete SLO %s in %s", id, dataset),
			run: func(ctx context.Context) error {
				return e.client.SLOs().Delete(ctx, dataset, id)
			},
		})
	}

	return nil
}

func (e *BundleExecutor) createBurnAlerts(ctx context.Context, step Step, result *BundleResult, undoStack *[]undoAction) error {
	recipients, err := e.resolveRecipients(ctx, step.BurnAlert.Recipients, undoStack)
	if err != nil {
		return err
	}

	// One alert per target dataset's SLO, each referencing the SLO ID
	// produced by the prior step.
	for _, dataset := range step.Datasets {
		dataset := dataset
		slo, ok := result.SLOs[dataset]
		if !ok {
			return fmt.Errorf("%w: burn alert for %s has no SLO", ErrStepOutOfOrder, dataset)
		}

		request := *step.BurnAlert
		request.SLO = SLOIDRef{ID: slo.ID}
		request.Recipients = recipients

		created, err := e.client.BurnAlerts().Create(ctx, dataset, &request)
		if err != nil {
			return fmt.Errorf("creating %s burn alert in %s: %w", step.BurnAlert.AlertType, dataset, err)
		}

		result.BurnAlerts = append(result.BurnAlerts, created)

		id := created.ID
		*undoStack = append(*undoStack, undoAction{
			description: fmt.Sprintf("delete burn alert %s in %s", id, dataset),
			run: func(ctx context.Context) error {
				return e.client.BurnAlerts().Delete(ctx, dataset, id)
			},
		})
	}

	return nil
}

func (e *BundleExecutor) createTrigger(ctx context.Context, step Step, result *BundleResult, undoStack *[]undoAction) error {
	for _, dataset := range step.Datasets {
		dataset := dataset
		recipients, err := e.resolveRecipients(ctx, step.Trigger.Recipients, undoStack)
		if err != nil {
			return err
		}

		request := *step.Trigger
		request.Recipients = recipients

		created, err := e.client.Triggers().Create(ctx, dataset, &request)
		if err != nil {
			return fmt.Errorf("creating trigger %q in %s: %w", step.Trigger.Name, dataset, err)
		}

		result.Triggers[dataset] = created

		id := created.ID
		*undoStack = append(*undoStack, undoAction{
			description: fmt.Sprintf("delete trigger %s in %s", id, dataset),
			run: func(ctx context.Context) error {
				return e.client.Triggers().Delete(ctx, dataset, id)
			},
		})
	}

	return nil
}

// resolveRecipients realizes inline recipient specs into IDs, creating each
// inline recipient once per bundle step.
func (e *BundleExecutor) resolveRecipients(ctx context.Context, refs []RecipientRef, undoStack *[]undoAction) ([]RecipientRef, error) {
	resolved := make([]RecipientRef, 0, len(refs))

	for _, ref := range refs {
		if ref.Create == nil {
			resolved = append(resolved, ref)

			continue
		}

		created, err := e.client.Recipients().Create(ctx, ref.Create)
		if err != nil {
			return nil, fmt.Errorf("creating %s recipient: %w", ref.Create.Type, err)
		}

		id := created.ID
		*undoStack = append(*undoStack, undoAction{
			description: fmt.Sprintf("delete recipient %s", id),
			run: func(ctx context.Context) error {
				return e.client.Recipients().Delete(ctx, id)
			},
		})

		resolved = append(resolved, RecipientRef{ID: id})
	}

	return resolved, nil
}

// rollback runs the undo stack in reverse order. Undo failures are logged
// and swallowed so the caller always sees the original step failure; a
// failed undo leaves the orphaned resource behind.
func (e *BundleExecutor) rollback(ctx context.Context, runID string, undoStack []undoAction) {
	for i := len(undoStack) - 1; i >= 0; i-- {
		action := undoStack[i]

		err := action.run(ctx)
		if err != nil && e.logger != nil {
			e.logger.Warn("bundle cleanup failed", map[string]interface{}{
				"run_id": runID,
				"action": action.description,
				"error":  err.Error(),
			})
		}
	}
}
