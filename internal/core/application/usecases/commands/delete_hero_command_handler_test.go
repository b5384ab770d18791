package commands_test

import (
	"testing"

	"cafeteria/internal/core/application/usecases/commands"
	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteHeroCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	heroID := kernel.NewUUID()
	cmd, _ := commands.NewDeleteHeroCommand(heroID)

	repo := new(MockHeroRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HeroRepository").Return(repo).Once(),
		repo.On("Delete", ctx, heroID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockHeroUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteHeroCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteHeroCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	heroID := kernel.NewUUID()
	cmd, _ := commands.NewDeleteHeroCommand(heroID)

	repo := new(MockHeroRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HeroRepository").Return(repo).Once(),
		repo.On("Delete", ctx, heroID).
			Return(errs.NewObjectNotFoundError("hero", heroID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockHeroUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteHeroCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit")
}
