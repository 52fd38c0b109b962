package queries_test

import (
	"testing"

	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	assert.ErrorIs(t, queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListUserOrdersQuery{}.Validate(), queries.ErrListUserOrdersQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListAllOrdersQuery{}.Validate(), queries.ErrListAllOrdersQueryIsNotConstructed)
}

func TestQueries_RequireActor(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.NewUUID(), nil)
	require.ErrorIs(t, err, errs.ErrUnauthenticated)

	_, err = queries.NewListUserOrdersQuery(kernel.NewUUID(), nil)
	require.ErrorIs(t, err, errs.ErrUnauthenticated)

	_, err = queries.NewListAllOrdersQuery(nil)
	require.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestNewGetOrderQuery_RejectsZeroOrderID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{}, newUser(t, false))
	require.Error(t, err)
}
