package catalog

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"tripnest/models"
	"tripnest/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PackageStore exposes the hotel-package catalog, keyed by hotel name.
type PackageStore interface {
	GetAllPackages(ctx context.Context) ([]models.Package, error)
	GetPackage(ctx context.Context, hotelName string) (*models.Package, error)
}

type MongoPackageStore struct {
	col *mongo.Collection
}

func NewMongoPackageStore(col *mongo.Collection) *MongoPackageStore {
	return &MongoPackageStore{col: col}
}

func (s *MongoPackageStore) GetAllPackages(ctx context.Context) ([]models.Package, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var packages []models.Package
	for cur.Next(ctx) {
		var p models.Package
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}
	return packages, cur.Err()
}

func (s *MongoPackageStore) GetPackage(ctx context.Context, hotelName string) (*models.Package, error) {
	var p models.Package
	err := s.col.FindOne(ctx, bson.M{"hotel_name": hotelName}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

type Handlers struct {
	Packages PackageStore
}

func NewHandlers(packages PackageStore) *Handlers {
	return &Handlers{Packages: packages}
}

// GetAllPackages returns the whole catalog. No filtering, no pagination.
func (h *Handlers) GetAllPackages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	packages, err := h.Packages.GetAllPackages(ctx)
	if err != nil {
		log.Printf("package listing failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve packages")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"data": projectPackages(packages)})
}

// GetPackage returns a single package by hotel name.
func (h *Handlers) GetPackage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	hotelName := ps.ByName("hotelName")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pkg, err := h.Packages.GetPackage(ctx, hotelName)
	if errors.Is(err, models.ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Package not found")
		return
	}
	if err != nil {
		log.Printf("package lookup failed for %s: %v", hotelName, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve package")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"data": pkg})
}

// projectPackages maps catalog records to their display projection: named
// fields only, storage identifiers stripped, 1-based index attached.
func projectPackages(packages []models.Package) []models.PackageView {
	views := make([]models.PackageView, 0, len(packages))
	for i, p := range packages {
		views = append(views, models.PackageView{
			Index:       i + 1,
			HotelName:   p.HotelName,
			Cost:        p.Cost,
			Location:    p.Location,
			Nights:      p.Nights,
			Description: p.Description,
		})
	}
	return views
}
