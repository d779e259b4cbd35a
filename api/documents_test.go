package api_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/RakshithaNagaraju74/MedWell/api"
)

var _ = Describe("Document endpoints", func() {
	var e *echo.Echo
	var handler *api.Handler

	BeforeEach(func() {
		e = echo.New()
		handler = api.NewHandler(api.Params{})
	})

	newMultipartContext := func(fields map[string]string) (echo.Context, *httptest.ResponseRecorder) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		for key, value := range fields {
			Expect(writer.WriteField(key, value)).To(Succeed())
		}
		Expect(writer.Close()).To(Succeed())

		req := httptest.NewRequest(http.MethodPost, "/api/documents", body)
		req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	Describe("ListDocuments", func() {
		It("requires a userId", func() {
			c, rec := newContext(e, http.MethodGet, "/api/documents", "")
			serve(handler.ListDocuments, c)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("UploadDocument", func() {
		It("requires a userId", func() {
			c, rec := newMultipartContext(map[string]string{"title": "Lab results"})
			serve(handler.UploadDocument, c)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("userId"))
		})

		It("requires a file part", func() {
			c, rec := newMultipartContext(map[string]string{"userId": "1234", "title": "Lab results"})
			serve(handler.UploadDocument, c)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("file"))
		})
	})
})
