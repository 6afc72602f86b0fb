package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/cleaning/model"
	"frontdesk/internal/domains/cleaning/model/dto"
	"frontdesk/internal/domains/cleaning/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepository "frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
	"frontdesk/shared/validator"

	"github.com/rs/zerolog/log"
)

const errRoomNotFound = "Room not found"

type CleaningStatus interface {
	GetAll(ctx context.Context) (dto.CleaningStatusResponse, error)
	SetStatus(ctx context.Context, req dto.SetCleaningStatusRequest) error
}

type serviceImpl struct {
	repo     repository.CleaningStatus
	roomRepo roomRepository.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.CleaningStatus, roomRepo roomRepository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) CleaningStatus {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.CleaningStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".cleaning.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(constant.CachePrefixCleaning, constant.CacheKeyAll)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for cleaning statuses")

		return res, nil
	}

	generation, genErr := shared.CacheGeneration(ctx, s.cache, constant.CachePrefixCleaning)

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get cleaning statuses")

		return res, fmt.Errorf("failed to get cleaning statuses: %w", err)
	}

	res.FromModels(models)

	if genErr != nil {
		log.Warn().Err(genErr).Msg("skipping cleaning statuses cache save, generation unavailable")

		return res, nil
	}

	go shared.SaveCache(context.WithoutCancel(ctx), s.cache, constant.CachePrefixCleaning, cacheKey, res, s.cfg.Cache.TTL, generation)

	return res, nil
}

// SetStatus marks one room CLEAN or DIRTY. An unknown room number is reported, not ignored.
func (s *serviceImpl) SetStatus(ctx context.Context, req dto.SetCleaningStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".cleaning.SetStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	req.Normalize()

	if req.RoomID == constant.Empty || req.Status == constant.Empty {
		return failure.MissingCleaningFields
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldRoomNumber, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("room", req.RoomID).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return failure.NotFound(errRoomNotFound)
	}

	updated, err := s.repo.Update(ctx, map[string]any{
		model.FieldStatus:      req.Status,
		model.FieldLastUpdated: timezone.Now(),
	}, shared.FilterByID(room.ID, model.FieldRoomID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("room", req.RoomID).Msg("failed to update cleaning status")

		return fmt.Errorf("failed to update cleaning status: %w", err)
	}

	if updated == 0 {
		log.Warn().Str("room", req.RoomID).Msg("room has no cleaning status row")

		return failure.NotFound(errRoomNotFound)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixCleaning)

	return nil
}
