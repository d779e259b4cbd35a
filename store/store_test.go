package store_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/RakshithaNagaraju74/MedWell/store"
)

var _ = Describe("Sort", func() {
	It("maps ascending to 1", func() {
		sort := store.Sort{Attribute: "dueDate", Ascending: true}
		Expect(sort.Order()).To(Equal(1))
	})

	It("maps descending to -1", func() {
		sort := store.Sort{Attribute: "dueDate"}
		Expect(sort.Order()).To(Equal(-1))
	})
})

var _ = Describe("Config", func() {
	It("uses the configured uri verbatim", func() {
		cfg := &store.Config{Uri: "mongodb://user:pw@db.example.com:27017/?tls=true"}
		cs, err := store.GetConnectionString(cfg)
		Expect(err).ToNot(HaveOccurred())
		Expect(cs).To(Equal("mongodb://user:pw@db.example.com:27017/?tls=true"))
	})
})

var _ = Describe("IsDuplicateKeyError", func() {
	It("is false for nil and unrelated errors", func() {
		Expect(store.IsDuplicateKeyError(nil)).To(BeFalse())
		Expect(store.IsDuplicateKeyError(errors.New("broken pipe"))).To(BeFalse())
	})
})
