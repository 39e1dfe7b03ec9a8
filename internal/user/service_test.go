package user

import (
	"log/slog"
	"os"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestUser(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "User Module Suite")
}

type mockUserRepo struct {
	users map[int64]*User
}

func newMockUserRepo() *mockUserRepo {
	agencyID := int64(3)
	return &mockUserRepo{
		users: map[int64]*User{
			1: {ID: 1, Email: "jane@example.com", Name: "Jane Rivera", Role: "citizen"},
			2: {ID: 2, Email: "works@cityhall.gov", Name: "Public Works Desk", Role: "agency", AgencyID: &agencyID},
		},
	}
}

func (m *mockUserRepo) GetByID(userID int64) (*User, error) {
	if u, ok := m.users[userID]; ok {
		return u, nil
	}
	return nil, ErrNotFound
}

func (m *mockUserRepo) GetAll() ([]*User, error) {
	out := make([]*User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *mockUserRepo) Update(userID int64, name, role string, agencyID *int64) error {
	u, ok := m.users[userID]
	if !ok {
		return ErrNotFound
	}
	u.Name = name
	u.Role = role
	u.AgencyID = agencyID
	return nil
}

func (m *mockUserRepo) Delete(userID int64) error {
	if _, ok := m.users[userID]; !ok {
		return ErrNotFound
	}
	delete(m.users, userID)
	return nil
}

var _ = ginkgo.Describe("UserService", func() {
	var (
		service *Service
		repo    *mockUserRepo
	)

	ginkgo.BeforeEach(func() {
		repo = newMockUserRepo()
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = NewService(repo, slogger)
	})

	ginkgo.Describe("Update", func() {
		ginkgo.It("should clear the agency link when demoting to citizen", func() {
			err := service.Update(2, UpdateUserDTO{Name: "Former Desk", Role: "citizen"})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(repo.users[2].Role).To(gomega.Equal("citizen"))
			gomega.Expect(repo.users[2].AgencyID).To(gomega.BeNil())
		})

		ginkgo.It("should keep the agency link for agency-role users", func() {
			agencyID := int64(5)
			err := service.Update(2, UpdateUserDTO{Name: "Desk", Role: "agency", AgencyID: &agencyID})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(*repo.users[2].AgencyID).To(gomega.Equal(int64(5)))
		})

		ginkgo.It("should require agency_id when setting the agency role", func() {
			err := service.Update(1, UpdateUserDTO{Name: "Jane", Role: "agency"})

			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(err.Error()).To(gomega.ContainSubstring("Agency ID is required"))
		})

		ginkgo.It("should reject an unknown role", func() {
			err := service.Update(1, UpdateUserDTO{Name: "Jane", Role: "mayor"})

			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("should return ErrNotFound for a missing user", func() {
			err := service.Update(99, UpdateUserDTO{Name: "Ghost", Role: "citizen"})
			gomega.Expect(err).To(gomega.Equal(ErrNotFound))
		})
	})

	ginkgo.Describe("Delete", func() {
		ginkgo.It("should remove the user", func() {
			gomega.Expect(service.Delete(1)).To(gomega.Succeed())
			gomega.Expect(repo.users).ToNot(gomega.HaveKey(int64(1)))
		})

		ginkgo.It("should return ErrNotFound for a missing user", func() {
			gomega.Expect(service.Delete(99)).To(gomega.Equal(ErrNotFound))
		})
	})
})
