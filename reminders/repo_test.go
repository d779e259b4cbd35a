package reminders_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx/fxtest"

	"github.com/RakshithaNagaraju74/MedWell/reminders"
	remindersTest "github.com/RakshithaNagaraju74/MedWell/reminders/test"
	dbTest "github.com/RakshithaNagaraju74/MedWell/store/test"
	"github.com/RakshithaNagaraju74/MedWell/test"
)

var _ = Describe("Reminders Repository", func() {
	var repo reminders.Repository
	var collection *mongo.Collection

	BeforeEach(func() {
		var err error
		database := dbTest.GetTestDatabase()
		collection = database.Collection("reminders")
		lifecycle := fxtest.NewLifecycle(GinkgoT())
		repo, err = reminders.NewRepository(database, lifecycle)
		Expect(err).ToNot(HaveOccurred())
		Expect(repo).ToNot(BeNil())
		lifecycle.RequireStart()
	})

	AfterEach(func() {
		_, err := collection.DeleteMany(context.Background(), bson.M{})
		Expect(err).ToNot(HaveOccurred())
	})

	Describe("Create", func() {
		It("persists the reminder and assigns an id", func() {
			reminder := remindersTest.RandomReminder(test.Faker.UUID().V4())

			result, err := repo.Create(context.Background(), reminder)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).ToNot(BeNil())
			Expect(result.Id).ToNot(BeNil())
			Expect(result.Title).To(Equal(reminder.Title))
			Expect(result.CreatedAt).ToNot(BeZero())
		})
	})

	Describe("List", func() {
		It("returns an empty list for an unknown user", func() {
			result, err := repo.List(context.Background(), "does-not-exist")
			Expect(err).ToNot(HaveOccurred())
			Expect(result).ToNot(BeNil())
			Expect(result).To(BeEmpty())
		})

		It("returns reminders ordered by ascending due date", func() {
			userId := test.Faker.UUID().V4()
			for i := 0; i < 10; i++ {
				_, err := repo.Create(context.Background(), remindersTest.RandomReminder(userId))
				Expect(err).ToNot(HaveOccurred())
			}

			result, err := repo.List(context.Background(), userId)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(HaveLen(10))
			for i := 1; i < len(result); i++ {
				Expect(result[i].DueDate.Before(result[i-1].DueDate)).To(BeFalse())
			}
		})

		It("never returns reminders of other users", func() {
			userId := test.Faker.UUID().V4()
			_, err := repo.Create(context.Background(), remindersTest.RandomReminder(userId))
			Expect(err).ToNot(HaveOccurred())
			_, err = repo.Create(context.Background(), remindersTest.RandomReminder(test.Faker.UUID().V4()))
			Expect(err).ToNot(HaveOccurred())

			result, err := repo.List(context.Background(), userId)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(HaveLen(1))
			Expect(result[0].UserId).To(Equal(userId))
		})
	})
})
