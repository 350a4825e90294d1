package database

import (
	"context"
	"database/sql"
)

// statements creates the five application tables.  Each statement is
// idempotent so EnsureSchema can run on every startup.  Monetary columns are
// integer cents; date-only columns use DATE, everything else DATETIME in UTC.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		email         VARCHAR(255)    NOT NULL,
		password_hash VARCHAR(255)    NOT NULL,
		first_name    VARCHAR(100)    NOT NULL,
		last_name     VARCHAR(100)    NOT NULL,
		phone         VARCHAR(20)     NULL,
		created_at    DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_users_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS rooms (
		id                    BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name                  VARCHAR(255)    NOT NULL,
		description           TEXT            NULL,
		room_type             VARCHAR(100)    NOT NULL,
		price_per_night_cents BIGINT          NOT NULL,
		max_occupancy         INT             NOT NULL,
		amenities             TEXT            NULL,
		image_url             VARCHAR(500)    NULL,
		is_available          TINYINT(1)      NOT NULL DEFAULT 1,
		created_at            DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at            DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id                 BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		user_id            BIGINT UNSIGNED NOT NULL,
		room_id            BIGINT UNSIGNED NOT NULL,
		check_in_date      DATE            NOT NULL,
		check_out_date     DATE            NOT NULL,
		total_amount_cents BIGINT          NOT NULL,
		status             VARCHAR(50)     NOT NULL DEFAULT 'pending',
		special_requests   TEXT            NULL,
		created_at         DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at         DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_bookings_user (user_id),
		KEY idx_bookings_room (room_id),
		CONSTRAINT fk_bookings_user FOREIGN KEY (user_id) REFERENCES users (id),
		CONSTRAINT fk_bookings_room FOREIGN KEY (room_id) REFERENCES rooms (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS payments (
		id             BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		booking_id     BIGINT UNSIGNED NOT NULL,
		amount_cents   BIGINT          NOT NULL,
		payment_method VARCHAR(100)    NOT NULL,
		transaction_id VARCHAR(255)    NULL,
		status         VARCHAR(50)     NOT NULL DEFAULT 'pending',
		processed_at   DATETIME        NULL,
		created_at     DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_payments_booking (booking_id),
		CONSTRAINT fk_payments_booking FOREIGN KEY (booking_id) REFERENCES bookings (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS about_us (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		title      VARCHAR(255)    NOT NULL,
		content    TEXT            NOT NULL,
		section    VARCHAR(100)    NOT NULL,
		created_at DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema runs the DDL statements in order.  Bookings reference users
// and rooms, payments reference bookings, so order matters on first run.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
