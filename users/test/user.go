package test

import (
	"github.com/RakshithaNagaraju74/MedWell/test"
	"github.com/RakshithaNagaraju74/MedWell/users"
)

func RandomUser() users.User {
	return users.User{
		UserId: test.Faker.UUID().V4(),
		Name:   test.Faker.Person().Name(),
		Email:  test.Faker.Internet().Email(),
		Attributes: map[string]interface{}{
			"age":        int32(test.Faker.IntBetween(18, 90)),
			"bloodGroup": test.Faker.RandomStringElement([]string{"A+", "A-", "B+", "O+", "O-"}),
			"city":       test.Faker.Address().City(),
		},
	}
}
