package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/booking/idgen"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/repository"
	customerRepository "frontdesk/internal/domains/customer/repository"
	roomRepository "frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	gRepo "frontdesk/shared/repository"
	"frontdesk/shared/timezone"
	"frontdesk/shared/validator"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	errBookingNotFound = "Booking not found"
	errBookingExists   = "Booking already exists"
	errRoomNotFound    = "Room not found"
)

type Booking interface {
	GetAll(ctx context.Context) (dto.GetBookingsResponse, error)
	Create(ctx context.Context, req dto.UpsertBookingRequest) (string, error)
	Update(ctx context.Context, req dto.UpsertBookingRequest) error
}

type serviceImpl struct {
	repo           repository.Booking
	assignmentRepo repository.Assignment
	customerRepo   customerRepository.Customer
	roomRepo       roomRepository.Room
	transactor     postgres.Transactor
	idGenerator    idgen.Generator
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
}

func New(
	repo repository.Booking,
	assignmentRepo repository.Assignment,
	customerRepo customerRepository.Customer,
	roomRepo roomRepository.Room,
	transactor postgres.Transactor,
	idGenerator idgen.Generator,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:           repo,
		assignmentRepo: assignmentRepo,
		customerRepo:   customerRepo,
		roomRepo:       roomRepo,
		transactor:     transactor,
		idGenerator:    idGenerator,
		cfg:            cfg,
		cache:          cache,
		otel:           otel,
	}
}

// stay is a request that passed every check and is ready to be written.
type stay struct {
	req      dto.UpsertBookingRequest
	checkIn  time.Time
	checkOut time.Time
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(constant.CachePrefixBooking, constant.CacheKeyAll)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	generation, genErr := shared.CacheGeneration(ctx, s.cache, constant.CachePrefixBooking)

	views, err := s.repo.GetAllViews(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(views)

	if genErr != nil {
		log.Warn().Err(genErr).Msg("skipping bookings cache save, generation unavailable")

		return res, nil
	}

	go shared.SaveCache(context.WithoutCancel(ctx), s.cache, constant.CachePrefixBooking, cacheKey, res, s.cfg.Cache.TTL, generation)

	return res, nil
}

// Create stores a new booking with its customer and rooms and returns its id.
// A missing id is generated.
func (s *serviceImpl) Create(ctx context.Context, req dto.UpsertBookingRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	st, err := s.prepare(&req)
	if err != nil {
		return constant.Empty, err
	}

	if st.req.ID == constant.Empty {
		st.req.ID = s.idGenerator.GetID(ctx)
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		customerID, err := s.customerRepo.UpsertTx(ctx, tx, st.req.ToCustomer())
		if err != nil {
			return fmt.Errorf("failed to resolve customer: %w", err)
		}

		if err = s.repo.InsertTx(ctx, tx, st.req.ToModel(st.req.ID, customerID, st.checkIn, st.checkOut)); err != nil {
			if gRepo.IsUniqueViolation(err) {
				return failure.Conflict(errBookingExists)
			}

			return fmt.Errorf("failed to insert booking: %w", err)
		}

		return s.assignRooms(ctx, tx, st.req.ID, st.req.RoomIDs)
	})
	if err != nil {
		log.Error().Err(err).Str("booking", st.req.ID).Msg("failed to create booking")

		return constant.Empty, err
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixBooking)

	return st.req.ID, nil
}

// Update overwrites an existing booking and replaces its room set with the requested one.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpsertBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	st, err := s.prepare(&req)
	if err != nil {
		return err
	}

	if st.req.ID == constant.Empty {
		return failure.MissingBookingFields
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		customerID, err := s.customerRepo.UpsertTx(ctx, tx, st.req.ToCustomer())
		if err != nil {
			return fmt.Errorf("failed to resolve customer: %w", err)
		}

		updated, err := s.repo.UpdateTx(ctx, tx,
			shared.TransformFields(st.req.ToModel(st.req.ID, customerID, st.checkIn, st.checkOut)),
			shared.FilterByID(st.req.ID, model.FieldID, model.TableName),
		)
		if err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}

		if updated == 0 {
			return failure.NotFound(errBookingNotFound)
		}

		_, err = s.assignmentRepo.DeleteTx(ctx, tx, shared.FilterByID(st.req.ID, model.FieldBookingID, model.AssignmentTableName))
		if err != nil {
			return fmt.Errorf("failed to clear booking rooms: %w", err)
		}

		return s.assignRooms(ctx, tx, st.req.ID, st.req.RoomIDs)
	})
	if err != nil {
		log.Error().Err(err).Str("booking", st.req.ID).Msg("failed to update booking")

		return err
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixBooking)

	return nil
}

func (s *serviceImpl) prepare(req *dto.UpsertBookingRequest) (stay, error) {
	req.Normalize()

	if !req.HasRequiredFields() {
		return stay{}, failure.MissingBookingFields
	}

	if err := validator.ValidateStruct(req); err != nil {
		return stay{}, err
	}

	checkIn, err := timezone.ParseDayMonthYear(req.CheckIn)
	if err != nil {
		return stay{}, failure.BadRequest(err)
	}

	checkOut, err := timezone.ParseDayMonthYear(req.CheckOut)
	if err != nil {
		return stay{}, failure.BadRequest(err)
	}

	return stay{req: *req, checkIn: checkIn, checkOut: checkOut}, nil
}

// assignRooms links the booking to every room number that resolves. Unknown numbers are
// skipped so a stale room list on the desk never blocks the booking itself.
func (s *serviceImpl) assignRooms(ctx context.Context, tx *sqlx.Tx, bookingID string, roomNumbers []string) error {
	rooms, err := s.roomRepo.ResolveNumbersTx(ctx, tx, roomNumbers)
	if err != nil {
		return fmt.Errorf("failed to resolve rooms: %w", err)
	}

	roomIDs := make(map[string]string, len(rooms))
	for _, room := range rooms {
		roomIDs[room.RoomNumber] = room.ID
	}

	assignments := make([]model.Assignment, 0, len(roomNumbers))

	for _, number := range roomNumbers {
		roomID, ok := roomIDs[number]
		if !ok {
			log.Warn().Str("booking", bookingID).Str("room", number).Msg("skipping unknown room")

			continue
		}

		assignments = append(assignments, model.Assignment{BookingID: bookingID, RoomID: roomID})
	}

	if err = s.assignmentRepo.InsertBulkTx(ctx, tx, assignments); err != nil {
		// a room removed between lookup and insert
		if gRepo.IsForeignKeyViolation(err) {
			return failure.NotFound(errRoomNotFound)
		}

		return fmt.Errorf("failed to assign rooms: %w", err)
	}

	return nil
}
