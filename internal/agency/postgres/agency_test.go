package postgres_test

import (
	"testing"
	"time"

	"github.com/citizenserve/complaint-management/internal/agency"
	agencyPostgres "github.com/citizenserve/complaint-management/internal/agency/postgres"
	agencyDatamodel "github.com/citizenserve/complaint-management/internal/core/datamodel/agency"
	userDatamodel "github.com/citizenserve/complaint-management/internal/core/datamodel/user"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestAgencyPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Agency Postgres Suite")
}

var _ = Describe("Agency Repository", func() {
	var (
		db   *gorm.DB
		repo agency.Repository
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&agencyDatamodel.Agency{}, &userDatamodel.User{})
		Expect(err).NotTo(HaveOccurred())

		repo = agencyPostgres.NewAgencyRepository(db)
	})

	agencyCount := func() int64 {
		var n int64
		Expect(db.Model(&agencyDatamodel.Agency{}).Count(&n).Error).To(Succeed())
		return n
	}

	Describe("CreateWithUserLink", func() {
		It("should create an agency without a user link", func() {
			row := &agencyDatamodel.Agency{Name: "Public Works", Department: "Infrastructure", CreatedAt: time.Now()}

			Expect(repo.CreateWithUserLink(row, nil)).To(Succeed())
			Expect(row.ID).To(BeNumerically(">", 0))
			Expect(agencyCount()).To(Equal(int64(1)))
		})

		It("should link an agency-role user in the same transaction", func() {
			desk := userDatamodel.User{Email: "works@cityhall.gov", PasswordHash: "x", Name: "Desk", Role: "agency", CreatedAt: time.Now()}
			Expect(db.Create(&desk).Error).To(Succeed())

			row := &agencyDatamodel.Agency{Name: "Public Works", Department: "Infrastructure", CreatedAt: time.Now()}
			Expect(repo.CreateWithUserLink(row, &desk.ID)).To(Succeed())

			var linked userDatamodel.User
			Expect(db.First(&linked, desk.ID).Error).To(Succeed())
			Expect(linked.AgencyID).NotTo(BeNil())
			Expect(*linked.AgencyID).To(Equal(row.ID))
		})

		It("should reject a duplicate name", func() {
			first := &agencyDatamodel.Agency{Name: "Public Works", Department: "Infrastructure", CreatedAt: time.Now()}
			Expect(repo.CreateWithUserLink(first, nil)).To(Succeed())

			dup := &agencyDatamodel.Agency{Name: "Public Works", Department: "Another", CreatedAt: time.Now()}
			Expect(repo.CreateWithUserLink(dup, nil)).To(Equal(agency.ErrNameTaken))
			Expect(agencyCount()).To(Equal(int64(1)))
		})

		It("should roll back the agency insert when the user does not exist", func() {
			missing := int64(9999)
			row := &agencyDatamodel.Agency{Name: "Public Works", Department: "Infrastructure", CreatedAt: time.Now()}

			Expect(repo.CreateWithUserLink(row, &missing)).To(Equal(agency.ErrUserNotFound))
			Expect(agencyCount()).To(BeZero())
		})

		It("should roll back the agency insert when the user is not agency-role", func() {
			citizen := userDatamodel.User{Email: "jane@example.com", PasswordHash: "x", Name: "Jane", Role: "citizen", CreatedAt: time.Now()}
			Expect(db.Create(&citizen).Error).To(Succeed())

			row := &agencyDatamodel.Agency{Name: "Public Works", Department: "Infrastructure", CreatedAt: time.Now()}

			Expect(repo.CreateWithUserLink(row, &citizen.ID)).To(Equal(agency.ErrUserNotAgencyRole))
			Expect(agencyCount()).To(BeZero())

			var after userDatamodel.User
			Expect(db.First(&after, citizen.ID).Error).To(Succeed())
			Expect(after.AgencyID).To(BeNil())
		})
	})

	Describe("GetAll", func() {
		It("should return agencies ordered by name", func() {
			for _, name := range []string{"Sanitation Services", "Parks and Recreation", "Public Works"} {
				Expect(repo.CreateWithUserLink(&agencyDatamodel.Agency{
					Name: name, Department: "Dept", CreatedAt: time.Now(),
				}, nil)).To(Succeed())
			}

			rows, err := repo.GetAll()

			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(3))
			Expect(rows[0].Name).To(Equal("Parks and Recreation"))
			Expect(rows[2].Name).To(Equal("Sanitation Services"))
		})
	})
})
