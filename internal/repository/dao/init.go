package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	err := db.AutoMigrate(
		&User{},
		&Client{},
		&Employee{},
		&Provider{},
		&TourPackage{},
		&Reservation{},
		&Passenger{},
		&ReservationCounter{},
	)
	if err != nil {
		return err
	}

	return ensureCounter(db)
}

// dropAllTables is used by the integration tests to start from a clean schema.
func dropAllTables(db *gorm.DB) error {
	return db.Migrator().DropTable(
		&Passenger{},
		&Reservation{},
		&ReservationCounter{},
		&TourPackage{},
		&Provider{},
		&Employee{},
		&Client{},
		&User{},
	)
}
