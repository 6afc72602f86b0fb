package shared_test

import (
	"context"
	"errors"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/cache/mocks"
	"frontdesk/shared/dto"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{name: "prefix only", prefix: "booking", expected: "booking"},
		{name: "with parts", prefix: "room", parts: []string{"all"}, expected: "room:all"},
		{name: "skips empty parts", prefix: "ratelimit", parts: []string{"10.0.0.1", "", "curl"}, expected: "ratelimit:10.0.0.1:curl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.BuildCacheKey(tt.prefix, tt.parts...))
		})
	}
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := mocks.NewMockRedisCache(ctrl)

	gomock.InOrder(
		redisCache.EXPECT().NextGeneration(gomock.Any(), "generation:booking").Return(int64(2), nil),
		redisCache.EXPECT().Clear(gomock.Any(), "booking:*").Return(nil),
		redisCache.EXPECT().Delete(gomock.Any(), "booking").Return(nil),
	)

	shared.InvalidateCaches(context.Background(), redisCache, "booking")
}

func TestInvalidateCachesKeepsGoingOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := mocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().NextGeneration(gomock.Any(), "generation:room").Return(int64(0), errors.New("redis down"))
	redisCache.EXPECT().Clear(gomock.Any(), "room:*").Return(errors.New("redis down"))
	redisCache.EXPECT().Delete(gomock.Any(), "room").Return(errors.New("redis down"))

	shared.InvalidateCaches(context.Background(), redisCache, "room")
}

func TestSaveCacheGuardsWithGeneration(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := mocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Generation(gomock.Any(), "generation:cleaning").Return(int64(7), nil)
	redisCache.EXPECT().
		SaveIfGeneration(gomock.Any(), "cleaning:all", "payload", 30, "generation:cleaning", int64(7)).
		Return(cache.ErrStaleGeneration)

	generation, err := shared.CacheGeneration(context.Background(), redisCache, "cleaning")

	assert.NoError(t, err)
	shared.SaveCache(context.Background(), redisCache, "cleaning", "cleaning:all", "payload", 30, generation)
}

func TestTransformFields(t *testing.T) {
	type bookingUpdate struct {
		ID            string  `db:"id" update:"-"`
		CustomerID    string  `db:"customer_id"`
		PaymentStatus string  `db:"payment_status"`
		DepositAmount *string `db:"deposit_amount"`
		Note          string
		Ignored       string `db:"-"`
	}

	result := shared.TransformFields(bookingUpdate{
		ID:         "BK1",
		CustomerID: "c-1",
		Note:       "front desk",
		Ignored:    "x",
	})

	expected := map[string]any{
		"customer_id":    "c-1",
		"payment_status": "",
		"deposit_amount": (*string)(nil),
	}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %+v, got %+v", expected, result)
	}

	pointerResult := shared.TransformFields(&bookingUpdate{CustomerID: "c-2"})
	assert.Equal(t, "c-2", pointerResult["customer_id"])
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("BK1", "booking_id", "booking_rooms")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "booking_id",
				Value:    "BK1",
				Operator: dto.FilterOperatorEq,
				Table:    "booking_rooms",
			},
		},
	}

	assert.Equal(t, expected, result)

	where, args := result.GetWhereClause()
	assert.Equal(t, "(booking_rooms.booking_id = :booking_id)", where)
	assert.Equal(t, "BK1", args["booking_id"])
}
