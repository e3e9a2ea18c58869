package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/observability"
)

var (
	// ErrNotFound is returned when no record matches a well-formed id.
	ErrNotFound = errors.New("employee not found")
	// ErrMalformedID is returned when an id is not a valid ObjectID hex string.
	ErrMalformedID = errors.New("malformed employee id")
)

const (
	deleteHitMessage  = "Employee deleted successfully"
	deleteMissMessage = "Invalid employee"
)

// EmployeeRepository manages employee persistence.
type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.Employee, error)
	Get(ctx context.Context, id string) (*domain.Employee, error)
	Create(ctx context.Context, emp domain.Employee) (*domain.Employee, error)
	Update(ctx context.Context, id string, emp domain.Employee) (*domain.Employee, error)
	Delete(ctx context.Context, id string) (domain.DeleteResult, error)
}

type employeeDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"firstName"`
	LastName  string             `bson:"lastName"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone"`
	Gender    *string            `bson:"gender,omitempty"`
}

type employeeRepository struct {
	coll    *mongo.Collection
	metrics *observability.Metrics
}

// NewEmployeeRepository builds the repository over coll. metrics may be nil.
func NewEmployeeRepository(coll *mongo.Collection, metrics *observability.Metrics) EmployeeRepository {
	return &employeeRepository{coll: coll, metrics: metrics}
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	defer r.metrics.ObserveQuery("list", time.Now())

	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []employeeDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	result := make([]domain.Employee, 0, len(docs))
	for i := range docs {
		result = append(result, docs[i].toDomain())
	}
	return result, nil
}

func (r *employeeRepository) Get(ctx context.Context, id string) (*domain.Employee, error) {
	defer r.metrics.ObserveQuery("get", time.Now())

	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var doc employeeDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, mapNoDocuments(err)
	}
	emp := doc.toDomain()
	return &emp, nil
}

func (r *employeeRepository) Create(ctx context.Context, emp domain.Employee) (*domain.Employee, error) {
	defer r.metrics.ObserveQuery("create", time.Now())

	doc := newDocument(emp)
	doc.ID = primitive.NewObjectID()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	created := doc.toDomain()
	return &created, nil
}

func (r *employeeRepository) Update(ctx context.Context, id string, emp domain.Employee) (*domain.Employee, error) {
	defer r.metrics.ObserveQuery("update", time.Now())

	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.D{
		{Key: "firstName", Value: emp.FirstName},
		{Key: "lastName", Value: emp.LastName},
		{Key: "email", Value: emp.Email},
		{Key: "phone", Value: emp.Phone},
	}
	if emp.Gender != nil {
		set = append(set, bson.E{Key: "gender", Value: string(*emp.Gender)})
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc employeeDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.D{{Key: "$set", Value: set}}, opts).Decode(&doc)
	if err != nil {
		return nil, mapNoDocuments(err)
	}
	updated := doc.toDomain()
	return &updated, nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	defer r.metrics.ObserveQuery("delete", time.Now())

	oid, err := parseID(id)
	if err != nil {
		return domain.DeleteResult{}, err
	}

	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Err()
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return domain.DeleteResult{IsSuccessful: false, Message: deleteMissMessage}, nil
	case err != nil:
		return domain.DeleteResult{}, err
	}
	return domain.DeleteResult{IsSuccessful: true, Message: deleteHitMessage}, nil
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrMalformedID
	}
	return oid, nil
}

func mapNoDocuments(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func newDocument(emp domain.Employee) employeeDocument {
	doc := employeeDocument{
		FirstName: emp.FirstName,
		LastName:  emp.LastName,
		Email:     emp.Email,
		Phone:     emp.Phone,
	}
	if emp.Gender != nil {
		g := string(*emp.Gender)
		doc.Gender = &g
	}
	return doc
}

func (d employeeDocument) toDomain() domain.Employee {
	emp := domain.Employee{
		ID:        d.ID.Hex(),
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Phone:     d.Phone,
	}
	if d.Gender != nil {
		g := domain.Gender(*d.Gender)
		emp.Gender = &g
	}
	return emp
}
