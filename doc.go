// Package faber persists materials-engineering fatigue-test data: material
// compositions, semi-products and their treatments, specimens, fatigue tests
// and their loads.
//
// Open connects to the configured database, creates the schema on first use
// and returns a Store. Units of work run inside Store.WithSession, which pins
// one pooled connection until the callback returns:
//
//	settings, err := config.Load()
//	if err != nil {
//		log.Fatal(err)
//	}
//	store, err := faber.Open(ctx, settings)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer store.Close()
//
//	err = store.WithSession(ctx, func(ctx context.Context, s *database.Session) error {
//		return faber.NewService[models.MaterialCategory](s).Save(ctx, &models.MaterialCategory{Name: "Metals"})
//	})
package faber
