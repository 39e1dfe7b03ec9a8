package complaint_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/citizenserve/complaint-management/internal/auth"
	"github.com/citizenserve/complaint-management/internal/complaint"
	complaintPostgres "github.com/citizenserve/complaint-management/internal/complaint/postgres"
	agencyDatamodel "github.com/citizenserve/complaint-management/internal/core/datamodel/agency"
	complaintDatamodel "github.com/citizenserve/complaint-management/internal/core/datamodel/complaint"
	userDatamodel "github.com/citizenserve/complaint-management/internal/core/datamodel/user"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ = Describe("Complaint Handler Integration", func() {
	var (
		db      *gorm.DB
		service *complaint.Service
		handler *complaint.Handler
		router  *chi.Mux
		jane    userDatamodel.User
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(
			&agencyDatamodel.Agency{},
			&userDatamodel.User{},
			&complaintDatamodel.Complaint{},
			&complaintDatamodel.Response{},
		)
		Expect(err).NotTo(HaveOccurred())

		jane = userDatamodel.User{Email: "jane@example.com", PasswordHash: "x", Name: "Jane Rivera", Role: "citizen", CreatedAt: time.Now()}
		Expect(db.Create(&jane).Error).To(Succeed())

		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		repo := complaintPostgres.NewComplaintRepository(db)
		service = complaint.NewService(repo, nil, slogger)
		handler = complaint.NewHandler(service)

		router = chi.NewRouter()
		router.Get("/complaints", handler.ListComplaints)
		router.Get("/complaints/{id}", handler.GetComplaint)
		router.Post("/complaints", withPrincipal(&auth.User{ID: jane.ID, Email: jane.Email, Role: jane.Role}, handler.CreateComplaint))
		router.Patch("/complaints/{id}/status", handler.UpdateStatus)
	})

	Describe("POST /complaints", func() {
		It("should file the complaint and return its id", func() {
			body, _ := json.Marshal(map[string]string{
				"title":       "Pothole on Elm Street",
				"description": "Large pothole near the intersection.",
				"category":    "roads",
				"location":    "Elm St & 5th Ave",
			})
			req := httptest.NewRequest(http.MethodPost, "/complaints", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusCreated))
			var resp map[string]interface{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["complaintId"]).To(BeNumerically(">", 0))
		})

		It("should return 400 with validation details for a bad payload", func() {
			body, _ := json.Marshal(map[string]string{"title": "Pothole"})
			req := httptest.NewRequest(http.MethodPost, "/complaints", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			var resp map[string]interface{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp).To(HaveKey("error"))
		})
	})

	Describe("GET /complaints", func() {
		BeforeEach(func() {
			for _, c := range []struct {
				title, category, status string
			}{
				{"Pothole", "roads", "new"},
				{"Streetlight out", "lighting", "assigned"},
				{"Missed pickup", "sanitation", "new"},
			} {
				_, err := service.CreateComplaint(jane.ID, complaint.CreateComplaintDTO{
					Title: c.title, Description: "d", Category: c.category, Location: "l",
				})
				Expect(err).NotTo(HaveOccurred())
				if c.status != "new" {
					var row complaintDatamodel.Complaint
					Expect(db.Where("title = ?", c.title).First(&row).Error).To(Succeed())
					Expect(service.UpdateStatus(row.ID, complaint.UpdateStatusDTO{Status: c.status})).To(Succeed())
				}
			}
		})

		It("should list everything without filters", func() {
			req := httptest.NewRequest(http.MethodGet, "/complaints", nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			var rows []map[string]interface{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &rows)).To(Succeed())
			Expect(rows).To(HaveLen(3))
			Expect(rows[0]).To(HaveKey("citizenName"))
		})

		It("should OR comma-separated values within one field", func() {
			req := httptest.NewRequest(http.MethodGet, "/complaints?category=roads,lighting", nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			var rows []map[string]interface{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &rows)).To(Succeed())
			Expect(rows).To(HaveLen(2))
		})

		It("should AND across distinct fields", func() {
			req := httptest.NewRequest(http.MethodGet, "/complaints?category=roads,lighting&status=new", nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			var rows []map[string]interface{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &rows)).To(Succeed())
			Expect(rows).To(HaveLen(1))
			Expect(rows[0]["title"]).To(Equal("Pothole"))
		})

		It("should reject a non-numeric user_id filter", func() {
			req := httptest.NewRequest(http.MethodGet, "/complaints?user_id=abc", nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /complaints/{id}", func() {
		It("should return 404 with the flat error body for a missing row", func() {
			req := httptest.NewRequest(http.MethodGet, "/complaints/9999", nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
			var resp map[string]interface{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["error"]).To(Equal("Complaint not found"))
		})
	})
})

// withPrincipal simulates the auth middleware for handler-level tests.
func withPrincipal(u *auth.User, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		next(w, r.WithContext(auth.ContextWithUser(r.Context(), u)))
	}
}
