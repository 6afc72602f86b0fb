package idgen

//go:generate go run go.uber.org/mock/mockgen -source=./idgen.go -destination=./mocks/idgen_mock.go -package=mocks

import (
	"context"
	"fmt"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

// Generator hands out booking ids for clients that do not bring their own.
type Generator interface {
	GetID(ctx context.Context) string
}

type datedGenerator struct{}

func New() Generator {
	return &datedGenerator{}
}

// GetID returns BK-YYYYMMDD-XXXXXX, dated in the application timezone with a random hex suffix.
func (g *datedGenerator) GetID(_ context.Context) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:constant.BookingIDSuffixLength]

	return fmt.Sprintf("%s-%s-%s", constant.BookingIDPrefix, timezone.Now().Format(constant.BookingIDLayout), strings.ToUpper(suffix))
}
