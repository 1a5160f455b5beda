package db_test

import (
	"context"
	"database/sql"
	"errors"
	"moodiary/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm/logger"
)

type Test struct {
	ID       uint `gorm:"primaryKey"`
	Username string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.GormDB
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		testDB, err = db.NewGormDB(dialector, logger.Silent)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("Create", func() {
		When("the insert succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests" \("username"\) VALUES \(\$1\) RETURNING "id"$`).
					WithArgs("Alice").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectCommit()
			})

			It("should set the generated id", func() {
				record := Test{Username: "Alice"}
				Expect(testDB.Create(ctx, &record)).To(Succeed())
				Expect(record.ID).To(Equal(uint(1)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("a unique constraint is violated", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests"`).
					WillReturnError(&pgconn.PgError{Code: "23505"})
				mock.ExpectRollback()
			})

			It("should return ErrDuplicateKey", func() {
				err := testDB.Create(ctx, &Test{Username: "Alice"})
				Expect(err).To(MatchError(db.ErrDuplicateKey))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the insert fails otherwise", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests"`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			})

			It("should wrap the error", func() {
				err := testDB.Create(ctx, &Test{Username: "Alice"})
				Expect(err).To(MatchError(ContainSubstring("insert to table")))
				Expect(err).NotTo(MatchError(db.ErrDuplicateKey))
			})
		})
	})

	Describe("GetBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice"))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetBy(ctx, "username", "Alice", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Ghost", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetBy(ctx, "username", "Ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetAllBy", func() {
		When("a slice of values is given", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username IN \(\$1,\$2\) ORDER BY id desc$`).
					WithArgs("Alice", "Bob").
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(2, "Bob").
						AddRow(1, "Alice"))
			})

			It("should return all matching records in order", func() {
				var results []Test
				err := testDB.GetAllBy(ctx, "username", []string{"Alice", "Bob"}, &results, "id desc")
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].Username).To(Equal("Bob"))
				Expect(results[1].Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("columns are omitted", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT "tests"\."id" FROM "tests" WHERE id = \$1$`).
					WithArgs(1).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
			})

			It("should leave them out of the select list", func() {
				var results []Test
				err := testDB.GetAllBy(ctx, "id", 1, &results, "", "username")
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(1))
				Expect(results[0].Username).To(BeEmpty())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("an error occurs during query", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username.*`).
					WithArgs("Invalid").
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Test
				err := testDB.GetAllBy(ctx, "username", "Invalid", &results, "")
				Expect(err).To(MatchError(ContainSubstring("getting records by")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("DeleteBy", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectExec(`^DELETE FROM "tests" WHERE username = \$1$`).
				WithArgs("Alice").
				WillReturnResult(sqlmock.NewResult(0, 2))
			mock.ExpectCommit()
		})

		It("should report the affected rows", func() {
			deleted, err := testDB.DeleteBy(ctx, "username", "Alice", &Test{})
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(Equal(int64(2)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Transaction", func() {
		When("the callback succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests"`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectQuery(`^INSERT INTO "tests"`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
				mock.ExpectCommit()
			})

			It("should commit every write once", func() {
				err := testDB.Transaction(ctx, func(tx db.Store) error {
					if err := tx.Create(ctx, &Test{Username: "Alice"}); err != nil {
						return err
					}
					return tx.Create(ctx, &Test{Username: "Bob"})
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the callback fails", func() {
			var callbackErr error

			BeforeEach(func() {
				callbackErr = errors.New("callback failed")
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests"`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectRollback()
			})

			It("should roll back and return the error", func() {
				err := testDB.Transaction(ctx, func(tx db.Store) error {
					if err := tx.Create(ctx, &Test{Username: "Alice"}); err != nil {
						return err
					}
					return callbackErr
				})
				Expect(err).To(MatchError(callbackErr))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("ParseLogLevel", func() {
		It("should map known names and default to warn", func() {
			Expect(db.ParseLogLevel("silent")).To(Equal(logger.Silent))
			Expect(db.ParseLogLevel("INFO")).To(Equal(logger.Info))
			Expect(db.ParseLogLevel("error")).To(Equal(logger.Error))
			Expect(db.ParseLogLevel("")).To(Equal(logger.Warn))
		})
	})
})
