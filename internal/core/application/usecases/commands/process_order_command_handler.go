package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cafeteria/internal/core/domain/model/hero"
	"cafeteria/internal/core/domain/model/meal"
	"cafeteria/internal/core/domain/model/order"
	"cafeteria/internal/core/domain/services"
	"cafeteria/internal/pkg/errs"
)

// ErrOrderNotFound signals that the job referenced an order row that no
// longer exists. The job is stale (the order was deleted) and must be
// acknowledged, not retried.
var ErrOrderNotFound = errors.New("order referenced by job does not exist")

const (
	// MessageSuccess is the outcome recorded on a completed order.
	MessageSuccess = "success"

	// messageAllergicPrefix prefixes the sorted conflict list on a
	// cancelled order.
	messageAllergicPrefix = "hero is allergic to: "

	// messageReferenceLost is the outcome recorded when the hero or meal
	// was deleted between submission and processing.
	messageReferenceLost = "referenced hero or meal no longer exists"
)

// PrepTimer simulates meal preparation latency between the claim and the
// decision. It must honor ctx cancellation.
type PrepTimer func(ctx context.Context) error

// ProcessOrderCommandHandler is the worker core. Each job is processed in two
// transactions:
//
//  1. Claim: load the order and move Pending -> InProgress. An order already
//     InProgress is a redelivery of a job whose worker died mid-flight; it is
//     processed without re-claiming. A terminal order means the job is a
//     duplicate of finished work and is dropped.
//  2. Decide: after the simulated preparation delay, reload the order, load
//     the hero and meal, evaluate dietary conflicts, and write the terminal
//     state.
//
// The preparation delay runs outside both transactions so a slow meal never
// holds a database connection. Every write goes through the optimistic
// version check, so a cancellation racing the worker makes exactly one of the
// two writes stick.
type ProcessOrderCommandHandler struct {
	uowFactory UoWFactory
	evaluator  services.ConflictEvaluator
	prepTimer  PrepTimer
}

// NewProcessOrderCommandHandler creates the worker-side handler.
// prepTimer may be nil, in which case no preparation delay is applied.
func NewProcessOrderCommandHandler(
	uowFactory UoWFactory,
	evaluator services.ConflictEvaluator,
	prepTimer PrepTimer,
) ProcessOrderCommandHandler {
	return ProcessOrderCommandHandler{
		uowFactory: uowFactory,
		evaluator:  evaluator,
		prepTimer:  prepTimer,
	}
}

// Handle processes a single order job.
//
// Returns nil when the order reached (or already was in) a terminal state.
// Returns ErrOrderNotFound when the order row is gone, and an error wrapping
// errs.ErrVersionIsInvalid when a concurrent writer won the race; callers
// should acknowledge the job in both cases. Any other error is transient and
// the job should be redelivered.
func (h ProcessOrderCommandHandler) Handle(ctx context.Context, cmd ProcessOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.claim(ctx, cmd); err != nil {
		if errors.Is(err, errOrderIsTerminal) {
			return nil
		}
		return err
	}

	if h.prepTimer != nil {
		if err := h.prepTimer(ctx); err != nil {
			return err
		}
	}

	return h.decide(ctx, cmd)
}

// errOrderIsTerminal short-circuits Handle when the claim phase finds the
// order already finished. Never escapes this handler.
var errOrderIsTerminal = errors.New("order is already terminal")

func (h ProcessOrderCommandHandler) claim(ctx context.Context, cmd ProcessOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return fmt.Errorf("%w: %w", ErrOrderNotFound, err)
		}
		return err
	}

	if ord.Status() == order.InProgress {
		// Redelivered job: a previous worker claimed the order and died
		// before deciding. Proceed straight to the decision phase.
		return nil
	}
	if ord.Status().IsTerminal() {
		return errOrderIsTerminal
	}

	if err = ord.Start(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h ProcessOrderCommandHandler) decide(ctx context.Context, cmd ProcessOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return fmt.Errorf("%w: %w", ErrOrderNotFound, err)
		}
		return err
	}

	// The order may have been cancelled (or decided by a duplicate worker)
	// during the preparation delay.
	if ord.Status().IsTerminal() {
		return nil
	}

	orderedBy, orderedMeal, refErr := h.loadReferences(ctx, uow, ord)
	if refErr != nil {
		return refErr
	}

	if err = h.settle(ord, orderedBy, orderedMeal); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// loadReferences fetches the hero and meal. A missing reference is not an
// error here; settle turns it into a cancellation.
func (h ProcessOrderCommandHandler) loadReferences(
	ctx context.Context,
	uow UoW,
	ord *order.Order,
) (*hero.Hero, *meal.Meal, error) {
	orderedBy, err := uow.HeroRepository().Get(ctx, ord.HeroID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil, err
	}

	orderedMeal, err := uow.MealRepository().Get(ctx, ord.MealID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil, err
	}

	return orderedBy, orderedMeal, nil
}

func (h ProcessOrderCommandHandler) settle(ord *order.Order, orderedBy *hero.Hero, orderedMeal *meal.Meal) error {
	if orderedBy == nil || orderedMeal == nil {
		return ord.Cancel(messageReferenceLost)
	}

	conflicts := h.evaluator.Conflicts(orderedBy.Restrictions(), orderedMeal.Composition())
	if len(conflicts) > 0 {
		return ord.Cancel(messageAllergicPrefix + strings.Join(conflicts, ", "))
	}

	return ord.Complete(MessageSuccess)
}
