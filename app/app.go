package app

import (
	"homegnome/app/service/completion"
	"homegnome/app/service/session"
	"homegnome/domain/account"
	"homegnome/domain/listing"
	"homegnome/internal/blobstore"
	blobRepo "homegnome/internal/repository/blob"

	"gorm.io/gorm"
)

type Container struct {
	DB          *gorm.DB
	Blobs       *blobstore.Store
	Listings    listing.Repository
	Accounts    account.Repository
	Sessions    *session.Service
	Completions *completion.Service
}

func NewContainer(db *gorm.DB) *Container {
	blobs := blobstore.New(db)

	// Initialize repositories
	listingRepo := blobRepo.NewListingRepository(blobs)
	accountRepo := blobRepo.NewAccountRepository(blobs)

	// Initialize services
	sessionSvc := session.New(accountRepo)
	completionSvc := completion.New(blobRepo.NewCompletionStore(blobs, listingRepo))

	return &Container{
		DB:          db,
		Blobs:       blobs,
		Listings:    listingRepo,
		Accounts:    accountRepo,
		Sessions:    sessionSvc,
		Completions: completionSvc,
	}
}

func (c *Container) Migrate() error {
	return c.Blobs.Migrate()
}
