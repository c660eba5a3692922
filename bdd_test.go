package registration

import (
	"context"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterNewAccount(t *testing.T) {
	convey.Convey("Given a new visitor with email, name and password", t, func() {
		payload := RegistrationPayload{Email: "user@user.com", Name: "User", Password: "Password1!"}
		accounts := NewAccountRepository()
		svc := NewService(accounts, time.Second, bcrypt.MinCost)

		convey.Convey("When the visitor registers", func() {
			outcome := svc.Register(context.Background(), payload)

			convey.So(outcome.Kind, convey.ShouldEqual, OutcomeCreated)
			convey.So(IsValidID(string(outcome.Account.ID)), convey.ShouldBeTrue)

			convey.Convey("Then the account is retrievable by email", func() {
				acc, err := accounts.FindByEmail(context.Background(), payload.Email)

				convey.So(err, convey.ShouldBeNil)
				convey.So(acc.ID, convey.ShouldEqual, outcome.Account.ID)
			})

			convey.Convey("And registering the same email again reports it taken", func() {
				retry := svc.Register(context.Background(), payload)

				convey.So(retry.Kind, convey.ShouldEqual, OutcomeEmailTaken)

				n, err := accounts.Count(context.Background())
				convey.So(err, convey.ShouldBeNil)
				convey.So(n, convey.ShouldEqual, 1)
			})
		})
	})
}

func TestRejectedRegistration(t *testing.T) {
	convey.Convey("Given a visitor with an invalid payload", t, func() {
		payload := RegistrationPayload{Email: "bad", Name: "A", Password: "short"}
		accounts := NewAccountRepository()
		svc := NewService(accounts, time.Second, bcrypt.MinCost)

		convey.Convey("When the visitor registers", func() {
			outcome := svc.Register(context.Background(), payload)

			convey.So(outcome.Kind, convey.ShouldEqual, OutcomeValidationFailed)

			convey.Convey("Then every violation is reported at once", func() {
				fields := map[string]int{}
				for _, fe := range outcome.Errors {
					fields[fe.Field]++
				}

				convey.So(fields["email"], convey.ShouldEqual, 1)
				convey.So(fields["name"], convey.ShouldEqual, 1)
				convey.So(fields["password"], convey.ShouldBeGreaterThan, 1)
			})

			convey.Convey("And no account was persisted", func() {
				n, err := accounts.Count(context.Background())

				convey.So(err, convey.ShouldBeNil)
				convey.So(n, convey.ShouldEqual, 0)
			})
		})
	})
}
