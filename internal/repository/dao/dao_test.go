package dao

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	flag.Parse()

	if testing.Short() || os.Getenv("SKIP_DOCKER_TESTS") != "" {
		os.Exit(m.Run())
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Printf("dao tests: docker unavailable, skipping integration tests: %v", err)
		os.Exit(m.Run())
	}
	if err = pool.Client.Ping(); err != nil {
		log.Printf("dao tests: cannot reach docker, skipping integration tests: %v", err)
		os.Exit(m.Run())
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=backoffice",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=backoffice",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Printf("dao tests: could not start postgres, skipping integration tests: %v", err)
		os.Exit(m.Run())
	}
	_ = resource.Expire(180)

	dsn := fmt.Sprintf("postgres://backoffice:secret@%s/backoffice?sslmode=disable", resource.GetHostPort("5432/tcp"))
	pool.MaxWait = 2 * time.Minute
	err = pool.Retry(func() error {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		if err = sqlDB.Ping(); err != nil {
			return err
		}
		testDB = db
		return nil
	})
	if err != nil {
		_ = pool.Purge(resource)
		log.Fatalf("dao tests: postgres did not become ready: %v", err)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Printf("dao tests: could not purge postgres: %v", err)
	}

	os.Exit(code)
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	if testDB == nil {
		t.Skip("postgres container not available")
	}

	require.NoError(t, dropAllTables(testDB))
	require.NoError(t, InitTables(testDB))

	return testDB
}

func seedPackage(t *testing.T, db *gorm.DB, name string, price float64) TourPackage {
	t.Helper()

	pkg, err := NewPackageDAO(db).Insert(context.Background(), TourPackage{
		Name:         name,
		Description:  "test package",
		Price:        price,
		DurationDays: 2,
		MaxPax:       5,
		Destinations: []string{"Cusco", "Machu Picchu"},
	})
	require.NoError(t, err)

	return pkg
}

func seedClient(t *testing.T, db *gorm.DB, docNumber string) Client {
	t.Helper()

	client, err := NewClientDAO(db).Insert(context.Background(), Client{
		FullName:  "ANA QUISPE",
		DocType:   "DNI",
		DocNumber: docNumber,
	})
	require.NoError(t, err)

	return client
}

func testMint(existing int64) string {
	return fmt.Sprintf("RES-2026-%04d", existing+1)
}

func newReservation(pkg TourPackage, client Client, pax int) Reservation {
	passengers := make([]Passenger, pax)
	for i := range passengers {
		passengers[i] = Passenger{
			FirstName:   fmt.Sprintf("PAX%d", i),
			LastName:    "TEST",
			Nationality: "Peru",
			DocType:     "DNI",
			DocNumber:   fmt.Sprintf("4000000%d", i),
			BirthDate:   time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			Gender:      "F",
		}
	}

	return Reservation{
		PackageID:     pkg.ID,
		ClientID:      client.ID,
		TravelDate:    time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
		AdultCount:    pax,
		TotalAmount:   pkg.Price * float64(pax),
		Status:        "CONFIRMED",
		PaymentMethod: "YAPE",
		Passengers:    passengers,
	}
}

func TestClientDAO_UpsertByDocument(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	d := NewClientDAO(db)

	first, err := d.Upsert(ctx, Client{FullName: "JUAN PEREZ", DocType: "DNI", DocNumber: "12345678"})
	require.NoError(t, err)

	second, err := d.Upsert(ctx, Client{FullName: "JUAN PEREZ GOMEZ", DocType: "DNI", DocNumber: "12345678", Email: "juan@example.com"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "JUAN PEREZ GOMEZ", second.FullName)
	assert.Equal(t, "juan@example.com", second.Email)

	other, err := d.Upsert(ctx, Client{FullName: "JUAN PEREZ", DocType: "CE", DocNumber: "12345678"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)

	all, err := d.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestClientDAO_InsertDuplicateDocument(t *testing.T) {
	db := setupDB(t)
	seedClient(t, db, "11111111")

	_, err := NewClientDAO(db).Insert(context.Background(), Client{FullName: "OTHER", DocType: "DNI", DocNumber: "11111111"})
	assert.ErrorIs(t, err, ErrClientDocumentExists)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestReservationDAO_InsertHydratesAndDeleteCascades(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	d := NewReservationDAO(db)
	pkg := seedPackage(t, db, "Machu Picchu Full Day", 450)

	billing := Client{FullName: "ROSA MAMANI", DocType: "PASAPORTE", DocNumber: "P998877"}
	created, err := d.Insert(ctx, newReservation(pkg, Client{}, 2), &billing, testMint)
	require.NoError(t, err)

	assert.Equal(t, "RES-2026-0001", created.ReservationCode)
	assert.Equal(t, pkg.ID, created.Package.ID)
	assert.Equal(t, "ROSA MAMANI", created.Client.FullName)
	require.Len(t, created.Passengers, 2)
	assert.Equal(t, "PAX0", created.Passengers[0].FirstName)
	assert.Equal(t, "PAX1", created.Passengers[1].FirstName)
	assert.InDelta(t, 900.0, created.TotalAmount, 0.001)

	require.NoError(t, d.Delete(ctx, created.ID))

	_, err = d.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrReservationNotFound)

	var remaining int64
	require.NoError(t, db.Model(&Passenger{}).Where("reservation_id = ?", created.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)

	assert.ErrorIs(t, d.Delete(ctx, created.ID), ErrReservationNotFound)
}

func TestReservationDAO_CodesAreNotReusedAfterDelete(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	d := NewReservationDAO(db)
	pkg := seedPackage(t, db, "Valle Sagrado VIP", 280)
	client := seedClient(t, db, "22222222")

	first, err := d.Insert(ctx, newReservation(pkg, client, 1), nil, testMint)
	require.NoError(t, err)
	require.NoError(t, d.Delete(ctx, first.ID))

	second, err := d.Insert(ctx, newReservation(pkg, client, 1), nil, testMint)
	require.NoError(t, err)

	assert.Equal(t, "RES-2026-0001", first.ReservationCode)
	assert.Equal(t, "RES-2026-0002", second.ReservationCode)
}

func TestReservationDAO_InsertMissingReferences(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	d := NewReservationDAO(db)
	pkg := seedPackage(t, db, "Lago Titicaca", 320)
	client := seedClient(t, db, "33333333")

	ghostClient := newReservation(pkg, client, 1)
	ghostClient.ClientID = uuid.New()
	_, err := d.Insert(ctx, ghostClient, nil, testMint)
	assert.ErrorIs(t, err, ErrClientNotFound)

	ghostPackage := newReservation(pkg, client, 1)
	ghostPackage.PackageID = uuid.New()
	_, err = d.Insert(ctx, ghostPackage, nil, testMint)
	assert.ErrorIs(t, err, ErrPackageNotFound)

	// failed inserts leave the counter untouched
	created, err := d.Insert(ctx, newReservation(pkg, client, 1), nil, testMint)
	require.NoError(t, err)
	assert.Equal(t, "RES-2026-0001", created.ReservationCode)
}

func TestReservationDAO_ConcurrentInsertsGetDistinctCodes(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	d := NewReservationDAO(db)
	pkg := seedPackage(t, db, "Montana 7 Colores", 150)
	client := seedClient(t, db, "33333333")

	const workers = 12
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		codes []string
		errs  []error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := d.Insert(ctx, newReservation(pkg, client, 1), nil, testMint)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			codes = append(codes, created.ReservationCode)
		}()
	}
	wg.Wait()

	require.Empty(t, errs)
	require.Len(t, codes, workers)

	seen := make(map[string]bool)
	for _, c := range codes {
		assert.False(t, seen[c], "duplicate code %s", c)
		seen[c] = true
	}
	for i := 1; i <= workers; i++ {
		assert.True(t, seen[fmt.Sprintf("RES-2026-%04d", i)])
	}
}

func TestReservationDAO_UpdateStatus(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	d := NewReservationDAO(db)
	pkg := seedPackage(t, db, "Cusco Magico", 1200)
	client := seedClient(t, db, "44444444")

	created, err := d.Insert(ctx, newReservation(pkg, client, 1), nil, testMint)
	require.NoError(t, err)

	updated, err := d.UpdateStatus(ctx, created.ID, "CANCELLED")
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", updated.Status)
	assert.Equal(t, created.ReservationCode, updated.ReservationCode)

	_, err = d.UpdateStatus(ctx, client.ID, "CANCELLED")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestPackageDAO_NameConflictAndDeleteInUse(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	d := NewPackageDAO(db)
	pkg := seedPackage(t, db, "Test", 100)

	_, err := d.Insert(ctx, TourPackage{Name: "Test", Price: 50, DurationDays: 1, MaxPax: 2})
	assert.ErrorIs(t, err, ErrPackageNameExists)

	client := seedClient(t, db, "55555555")
	_, err = NewReservationDAO(db).Insert(ctx, newReservation(pkg, client, 1), nil, testMint)
	require.NoError(t, err)

	assert.ErrorIs(t, d.Delete(ctx, pkg.ID), ErrPackageInUse)

	stillThere, err := d.FindByID(ctx, pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cusco", "Machu Picchu"}, []string(stillThere.Destinations))

	free := seedPackage(t, db, "Unused", 10)
	require.NoError(t, d.Delete(ctx, free.ID))
	_, err = d.FindByID(ctx, free.ID)
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestEmployeeDAO_DeactivateKeepsRow(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	d := NewEmployeeDAO(db)

	employee, err := d.Insert(ctx, Employee{
		FullName: "LUIS TORRES",
		Position: "Guide",
		Email:    "luis@muhu.com",
		Phone:    "999888777",
		HireDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, statusActive, employee.Status)

	_, err = d.Insert(ctx, Employee{FullName: "X", Position: "Y", Email: "luis@muhu.com", Phone: "1", HireDate: time.Now()})
	assert.ErrorIs(t, err, ErrEmployeeEmailExists)

	deactivated, err := d.Deactivate(ctx, employee.ID)
	require.NoError(t, err)
	assert.Equal(t, statusInactive, deactivated.Status)

	all, err := d.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, statusInactive, all[0].Status)
}

func TestProviderDAO_DeactivateKeepsRow(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	d := NewProviderDAO(db)

	provider, err := d.Insert(ctx, Provider{CompanyName: "Inca Rail", ServiceType: "Transport", ContactName: "Carla"})
	require.NoError(t, err)

	_, err = d.Deactivate(ctx, provider.ID)
	require.NoError(t, err)

	found, err := d.FindByID(ctx, provider.ID)
	require.NoError(t, err)
	assert.Equal(t, statusInactive, found.Status)
}

func TestUserDAO_EmailUniqueAndDelete(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	d := NewUserDAO(db)

	user, err := d.Insert(ctx, User{Name: "Admin", Email: "admin@muhu.com", Password: "hash", Role: "ADMIN", Active: true})
	require.NoError(t, err)

	_, err = d.Insert(ctx, User{Name: "Copy", Email: "admin@muhu.com", Password: "hash", Role: "AGENT", Active: true})
	assert.ErrorIs(t, err, ErrUserEmailExists)

	updated, err := d.Update(ctx, user.ID, map[string]any{"active": false})
	require.NoError(t, err)
	assert.False(t, updated.Active)

	require.NoError(t, d.Delete(ctx, user.ID))
	_, err = d.FindByEmail(ctx, "admin@muhu.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDashboardDAO(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	d := NewDashboardDAO(db)
	pkg := seedPackage(t, db, "Machu Picchu Full Day", 450)
	client := seedClient(t, db, "66666666")

	_, err := NewReservationDAO(db).Insert(ctx, newReservation(pkg, client, 2), nil, testMint)
	require.NoError(t, err)

	totals, err := d.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), totals.Reservations)
	assert.InDelta(t, 900.0, totals.Revenue, 0.001)
	assert.Equal(t, int64(1), totals.Clients)
	assert.Equal(t, int64(1), totals.Packages)

	trend, err := d.RevenueSince(ctx, time.Now().AddDate(0, -1, 0))
	require.NoError(t, err)
	require.Len(t, trend, 1)
	assert.InDelta(t, 900.0, trend[0].Total, 0.001)

	top, err := d.TopPackages(ctx, 5)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "Machu Picchu Full Day", top[0].Name)
	assert.Equal(t, int64(1), top[0].Reservations)
}
