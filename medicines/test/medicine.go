package test

import (
	"time"

	"github.com/RakshithaNagaraju74/MedWell/medicines"
	"github.com/RakshithaNagaraju74/MedWell/test"
)

func RandomMedicine(userId string) medicines.Medicine {
	start := time.Now().Add(-time.Duration(test.Faker.IntBetween(1, 24*30)) * time.Hour).UTC().Truncate(time.Millisecond)
	end := start.Add(time.Duration(test.Faker.IntBetween(24, 24*90)) * time.Hour)
	return medicines.Medicine{
		UserId:    userId,
		Name:      test.Faker.Lorem().Word(),
		Dosage:    test.Faker.RandomStringElement([]string{"5mg", "10mg", "250mg", "500mg"}),
		Frequency: test.Faker.RandomStringElement([]string{"once daily", "twice daily", "every 8 hours"}),
		StartDate: &start,
		EndDate:   &end,
	}
}
