package main_test

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("OpenAPI document", func() {
	var doc *openapi3.T

	BeforeEach(func() {
		loader := openapi3.NewLoader()
		var err error
		doc, err = loader.LoadFromFile("api/openapi.yml")
		Expect(err).NotTo(HaveOccurred())
	})

	It("should be a valid OpenAPI 3 document", func() {
		Expect(doc.Validate(context.Background())).To(Succeed())
	})

	It("should document the complaint lifecycle routes", func() {
		for _, path := range []string{
			"/complaints",
			"/complaints/{id}",
			"/complaints/{id}/status",
			"/complaints/{id}/priority",
			"/complaints/{id}/assign",
			"/complaints/{id}/responses",
		} {
			Expect(doc.Paths.Find(path)).NotTo(BeNil(), "missing path %s", path)
		}
	})

	It("should document the identity and directory routes", func() {
		for _, path := range []string{
			"/users/register",
			"/users/login",
			"/users/profile",
			"/users/{id}",
			"/agencies",
		} {
			Expect(doc.Paths.Find(path)).NotTo(BeNil(), "missing path %s", path)
		}
	})
})
