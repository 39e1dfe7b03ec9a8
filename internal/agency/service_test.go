package agency

import (
	"log/slog"
	"os"
	"testing"
	"time"

	agencyDatamodel "github.com/citizenserve/complaint-management/internal/core/datamodel/agency"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestAgency(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Agency Module Suite")
}

type mockAgencyRepo struct {
	agencies     map[string]*agencyDatamodel.Agency
	nextID       int64
	linkedUserID *int64
	failWith     error
}

func newMockAgencyRepo() *mockAgencyRepo {
	return &mockAgencyRepo{
		agencies: make(map[string]*agencyDatamodel.Agency),
		nextID:   1,
	}
}

func (m *mockAgencyRepo) GetAll() ([]*agencyDatamodel.Agency, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := make([]*agencyDatamodel.Agency, 0, len(m.agencies))
	for _, a := range m.agencies {
		out = append(out, a)
	}
	return out, nil
}

func (m *mockAgencyRepo) CreateWithUserLink(a *agencyDatamodel.Agency, userID *int64) error {
	if m.failWith != nil {
		return m.failWith
	}
	if _, exists := m.agencies[a.Name]; exists {
		return ErrNameTaken
	}
	a.ID = m.nextID
	m.nextID++
	a.CreatedAt = time.Now()
	m.agencies[a.Name] = a
	m.linkedUserID = userID
	return nil
}

var _ = ginkgo.Describe("AgencyService", func() {
	var (
		service *Service
		repo    *mockAgencyRepo
	)

	ginkgo.BeforeEach(func() {
		repo = newMockAgencyRepo()
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = NewService(repo, slogger)
	})

	ginkgo.Describe("CreateAgency", func() {
		ginkgo.It("should create the agency and return the public record", func() {
			created, err := service.CreateAgency(CreateAgencyDTO{
				Name:       "Public Works",
				Department: "Infrastructure",
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(created.ID).To(gomega.BeNumerically(">", 0))
			gomega.Expect(created.Name).To(gomega.Equal("Public Works"))
			gomega.Expect(repo.linkedUserID).To(gomega.BeNil())
		})

		ginkgo.It("should pass the optional user link to the repository", func() {
			userID := int64(7)
			_, err := service.CreateAgency(CreateAgencyDTO{
				Name:       "Public Works",
				Department: "Infrastructure",
				UserID:     &userID,
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(repo.linkedUserID).ToNot(gomega.BeNil())
			gomega.Expect(*repo.linkedUserID).To(gomega.Equal(int64(7)))
		})

		ginkgo.It("should surface ErrNameTaken for a duplicate name", func() {
			_, err := service.CreateAgency(CreateAgencyDTO{Name: "Public Works", Department: "Infrastructure"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.CreateAgency(CreateAgencyDTO{Name: "Public Works", Department: "Other"})
			gomega.Expect(err).To(gomega.Equal(ErrNameTaken))
		})

		ginkgo.It("should reject a missing name or department", func() {
			_, err := service.CreateAgency(CreateAgencyDTO{Department: "Infrastructure"})
			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(err.Error()).To(gomega.ContainSubstring("name is required"))

			_, err = service.CreateAgency(CreateAgencyDTO{Name: "Public Works"})
			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(err.Error()).To(gomega.ContainSubstring("department is required"))
		})
	})
})
