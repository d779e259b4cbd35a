package test

import (
	"time"

	"github.com/RakshithaNagaraju74/MedWell/prescriptions"
	"github.com/RakshithaNagaraju74/MedWell/test"
)

func RandomPrescription(userId string) prescriptions.Prescription {
	prescribed := time.Now().Add(-time.Duration(test.Faker.IntBetween(1, 24*90)) * time.Hour).UTC().Truncate(time.Millisecond)
	return prescriptions.Prescription{
		UserId:       userId,
		Medication:   test.Faker.Lorem().Word(),
		Dosage:       test.Faker.RandomStringElement([]string{"5mg", "10mg", "250mg"}),
		Doctor:       test.Faker.Person().Name(),
		Notes:        test.Faker.Lorem().Sentence(5),
		PrescribedAt: prescribed,
	}
}
