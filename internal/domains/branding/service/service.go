package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/infras/s3"
	"frontdesk/internal/domains/branding/model"
	"frontdesk/internal/domains/branding/model/dto"
	"frontdesk/internal/domains/branding/repository"
	"frontdesk/shared"
	"frontdesk/shared/base64"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Branding interface {
	GetLogo(ctx context.Context) (dto.LogoResponse, error)
	SetLogo(ctx context.Context, req dto.SetLogoRequest) (dto.SetLogoResponse, error)
	DeleteLogo(ctx context.Context) error
}

type serviceImpl struct {
	repo  repository.Setting
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Setting, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Branding {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) GetLogo(ctx context.Context) (res dto.LogoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".branding.GetLogo")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(constant.CachePrefixBranding, constant.SettingKeyLogoURL)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for logo")

		return res, nil
	}

	generation, genErr := shared.CacheGeneration(ctx, s.cache, constant.CachePrefixBranding)

	url, err := s.currentLogo(ctx)
	if err != nil {
		return res, err
	}

	res.FromURL(url)

	if genErr != nil {
		log.Warn().Err(genErr).Msg("skipping logo cache save, generation unavailable")

		return res, nil
	}

	go shared.SaveCache(context.WithoutCancel(ctx), s.cache, constant.CachePrefixBranding, cacheKey, res, s.cfg.Cache.TTL, generation)

	return res, nil
}

// SetLogo uploads the data URL to object storage and points the logo setting at it.
// The previous object is removed once the new URL is stored.
func (s *serviceImpl) SetLogo(ctx context.Context, req dto.SetLogoRequest) (res dto.SetLogoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".branding.SetLogo")
	defer scope.End()
	defer scope.TraceIfError(err)

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	maxSize := strconv.FormatFloat(s.cfg.App.Logo.MaxSizeMB, 'f', -1, 64)
	if err = validator.ValidateVar(req.Logo, "maxfilesize="+maxSize); err != nil {
		return res, failure.BadRequestFromString("logo must not exceed " + maxSize + " MB")
	}

	contentType, data, err := base64.Decode(req.Logo)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	previous, err := s.currentLogo(ctx)
	if err != nil {
		return res, err
	}

	url, err := s.s3.UploadFileBytes(ctx, constant.LogoObjectPrefix, uuid.NewString()+base64.Extension(contentType), contentType, data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload logo")

		return res, fmt.Errorf("failed to upload logo: %w", err)
	}

	if err = s.repo.Put(ctx, constant.SettingKeyLogoURL, url); err != nil {
		log.Error().Err(err).Msg("failed to store logo url")
		s.removeObject(ctx, url)

		return res, fmt.Errorf("failed to store logo url: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixBranding)

	if previous != constant.Empty {
		s.removeObject(ctx, previous)
	}

	res.Success = true
	res.Logo = url

	return res, nil
}

// DeleteLogo clears the logo. Clearing an absent logo succeeds.
func (s *serviceImpl) DeleteLogo(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".branding.DeleteLogo")
	defer scope.End()
	defer scope.TraceIfError(err)

	previous, err := s.currentLogo(ctx)
	if err != nil {
		return err
	}

	if previous == constant.Empty {
		return nil
	}

	if _, err = s.repo.Delete(ctx, shared.FilterByID(constant.SettingKeyLogoURL, model.FieldKey, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete logo url")

		return fmt.Errorf("failed to delete logo url: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixBranding)

	s.removeObject(ctx, previous)

	return nil
}

func (s *serviceImpl) currentLogo(ctx context.Context) (string, error) {
	setting, err := s.repo.Get(ctx, shared.FilterByID(constant.SettingKeyLogoURL, model.FieldKey, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get logo setting")

		return constant.Empty, fmt.Errorf("failed to get logo setting: %w", err)
	}

	return setting.Value, nil
}

// removeObject deletes a stored logo. Failures only leave an orphan object behind, so they are logged.
func (s *serviceImpl) removeObject(ctx context.Context, url string) {
	objectKey := s.s3.GetObjectKeyFromURL(url)
	if objectKey == constant.Empty {
		log.Warn().Str("url", url).Msg("logo url is outside the storage domain")

		return
	}

	if err := s.s3.DeleteFile(ctx, objectKey); err != nil {
		log.Warn().Err(err).Str("objectKey", objectKey).Msg("failed to delete logo object")
	}
}
