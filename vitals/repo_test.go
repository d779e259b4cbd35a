package vitals_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx/fxtest"

	"github.com/RakshithaNagaraju74/MedWell/pointer"
	dbTest "github.com/RakshithaNagaraju74/MedWell/store/test"
	"github.com/RakshithaNagaraju74/MedWell/test"
	"github.com/RakshithaNagaraju74/MedWell/vitals"
	vitalsTest "github.com/RakshithaNagaraju74/MedWell/vitals/test"
)

var _ = Describe("Vitals Repository", func() {
	var repo vitals.Repository
	var collection *mongo.Collection

	BeforeEach(func() {
		var err error
		database := dbTest.GetTestDatabase()
		collection = database.Collection("vitals")
		lifecycle := fxtest.NewLifecycle(GinkgoT())
		repo, err = vitals.NewRepository(database, lifecycle)
		Expect(err).ToNot(HaveOccurred())
		Expect(repo).ToNot(BeNil())
		lifecycle.RequireStart()
	})

	AfterEach(func() {
		_, err := collection.DeleteMany(context.Background(), bson.M{})
		Expect(err).ToNot(HaveOccurred())
	})

	Describe("Create", func() {
		It("persists the reading and assigns an id", func() {
			reading := vitalsTest.RandomReading(test.Faker.UUID().V4(), "heartRate")

			result, err := repo.Create(context.Background(), reading)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).ToNot(BeNil())
			Expect(result.Id).ToNot(BeNil())
			Expect(result.Value).To(Equal(reading.Value))
		})

		It("defaults the recording time when the client omits it", func() {
			reading := vitalsTest.RandomReading(test.Faker.UUID().V4(), "heartRate")
			reading.RecordedAt = time.Time{}

			result, err := repo.Create(context.Background(), reading)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.RecordedAt).ToNot(BeZero())
		})
	})

	Describe("List", func() {
		var userId string

		BeforeEach(func() {
			userId = test.Faker.UUID().V4()
			for i := 0; i < 5; i++ {
				_, err := repo.Create(context.Background(), vitalsTest.RandomReading(userId, "heartRate"))
				Expect(err).ToNot(HaveOccurred())
			}
			for i := 0; i < 3; i++ {
				_, err := repo.Create(context.Background(), vitalsTest.RandomReading(userId, "bloodPressure"))
				Expect(err).ToNot(HaveOccurred())
			}
			_, err := repo.Create(context.Background(), vitalsTest.RandomReading(test.Faker.UUID().V4(), "heartRate"))
			Expect(err).ToNot(HaveOccurred())
		})

		It("returns all readings of the user ordered newest first", func() {
			result, err := repo.List(context.Background(), vitals.Filter{UserId: userId})
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(HaveLen(8))
			for i := 1; i < len(result); i++ {
				Expect(result[i].RecordedAt.After(result[i-1].RecordedAt)).To(BeFalse())
			}
		})

		It("narrows the list to a single reading type", func() {
			result, err := repo.List(context.Background(), vitals.Filter{
				UserId: userId,
				Type:   pointer.FromAny("bloodPressure"),
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(HaveLen(3))
			for _, reading := range result {
				Expect(reading.Type).To(Equal("bloodPressure"))
			}
		})

		It("returns an empty list for a type the user never recorded", func() {
			result, err := repo.List(context.Background(), vitals.Filter{
				UserId: userId,
				Type:   pointer.FromAny("temperature"),
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(BeEmpty())
		})
	})
})
