package mongo

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AlumniRepo interface {
	DistinctColleges(ctx context.Context) ([]string, error)
	DistinctBranches(ctx context.Context, college string) ([]string, error)
	FindByCollegeAndBranch(ctx context.Context, college, branch string) ([]*AlumniModel, error)
	InsertMany(ctx context.Context, list []*AlumniModel) (int, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type alumniRepoImpl struct {
	col *mongo.Collection
}

func NewAlumniRepo(db *mongo.Database, collection string) AlumniRepo {
	return &alumniRepoImpl{
		col: db.Collection(collection),
	}
}

func (s *alumniRepoImpl) DistinctColleges(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, "college", bson.M{})
}

func (s *alumniRepoImpl) DistinctBranches(ctx context.Context, college string) ([]string, error) {
	return s.distinct(ctx, "branch", bson.M{"college": college})
}

func (s *alumniRepoImpl) distinct(ctx context.Context, field string, filter bson.M) ([]string, error) {
	values, err := s.col.Distinct(ctx, field, filter)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if str, ok := v.(string); ok && str != "" {
			out = append(out, str)
		}
	}
	sort.Strings(out)
	return out, nil
}

// FindByCollegeAndBranch 按姓名排序返回某学院某专业的校友
func (s *alumniRepoImpl) FindByCollegeAndBranch(ctx context.Context, college, branch string) ([]*AlumniModel, error) {
	filter := bson.M{"college": college, "branch": branch}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	list := make([]*AlumniModel, 0)
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// InsertMany 批量写入，跳过缺少必填字段的记录，返回写入条数
func (s *alumniRepoImpl) InsertMany(ctx context.Context, list []*AlumniModel) (int, error) {
	now := time.Now()
	docs := make([]interface{}, 0, len(list))
	for _, a := range list {
		if a == nil || !a.Valid() {
			continue
		}
		if a.CreatedAt.IsZero() {
			a.CreatedAt = now
		}
		a.UpdatedAt = now
		docs = append(docs, a)
	}
	if len(docs) == 0 {
		return 0, nil
	}

	res, err := s.col.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if res != nil {
		return len(res.InsertedIDs), err
	}
	return 0, err
}

func (s *alumniRepoImpl) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.col.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
