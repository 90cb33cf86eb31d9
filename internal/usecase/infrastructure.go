package usecase

import "context"

// CouponService проверяет промокоды. Begin/Current реализуют
// last-write-wins: результат устаревшей попытки отбрасывается.
type CouponService interface {
	Resolve(ctx context.Context, code string) (int64, error)
	Begin(key string) uint64
	Current(key string, gen uint64) bool
}

type ImagesInfra interface {
	UploadImages(ctx context.Context, req *UploadImagesReq) (*UploadImagesRes, error)
	CleanupImages(keys []string)
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}
