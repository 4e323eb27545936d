package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/studystack/classroom/internal/core/domain"
)

const courseCollection = "courses"

type MongoCourseRepository struct {
	coll *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *MongoCourseRepository {
	return &MongoCourseRepository{coll: db.Collection(courseCollection)}
}

type mongoCourse struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Title      string             `bson:"title"`
	MentorID   string             `bson:"mentor_id"`
	MentorName string             `bson:"mentor_name,omitempty"`
	CreatedAt  int64              `bson:"created_at"`
}

func (r *MongoCourseRepository) Create(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	doc := mongoCourse{
		Title:      course.Title,
		MentorID:   course.MentorID,
		MentorName: course.MentorName,
		CreatedAt:  course.CreatedAt.Unix(),
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert course: %w", err)
	}

	created := *course
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoCourseRepository) List(ctx context.Context) ([]domain.Course, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoCourseRepository) ListByMentor(ctx context.Context, mentorID string) ([]domain.Course, error) {
	return r.find(ctx, bson.M{"mentor_id": mentorID})
}

func (r *MongoCourseRepository) find(ctx context.Context, query bson.M) ([]domain.Course, error) {
	cur, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Course
	for cur.Next(ctx) {
		var mc mongoCourse
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode course: %w", err)
		}
		out = append(out, domain.Course{
			ID:         mc.ID.Hex(),
			Title:      mc.Title,
			MentorID:   mc.MentorID,
			MentorName: mc.MentorName,
			CreatedAt:  unixToTime(mc.CreatedAt),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return out, nil
}
