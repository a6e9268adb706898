package impl

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"playtube/pkg"
	"playtube/service"
)

const defaultSortField = "createdAt"

// listingParams is the normalized form of a service.ListingRequest.
type listingParams struct {
	username string
	email    string
	query    string
	sortBy   string
	sortAsc  bool
	page     int
	limit    int
	owner    *primitive.ObjectID
}

func normalizeListing(req service.ListingRequest) (listingParams, error) {
	if req.Username == "" || req.Email == "" {
		return listingParams{}, pkg.NewMsgError(pkg.ErrMissingField, "username or email is not defined", nil)
	}

	page, limit, err := normalizePage(req.Page, req.Limit)
	if err != nil {
		return listingParams{}, err
	}

	p := listingParams{
		username: strings.ToLower(req.Username),
		email:    strings.ToLower(req.Email),
		query:    req.Query,
		sortBy:   req.SortBy,
		// anything but an explicit "asc" sorts descending
		sortAsc: req.SortType == "asc",
		page:    page,
		limit:   limit,
	}
	if p.sortBy == "" {
		p.sortBy = defaultSortField
	}

	if req.OwnerId != "" {
		oid, err := pkg.ParseId(req.OwnerId)
		if err != nil {
			return listingParams{}, err
		}
		p.owner = &oid
	}
	return p, nil
}

// buildListingPipeline composes the channel-listing aggregation:
// match the owning user, join and flatten their videos, filter, sort,
// then page inside a facet that also counts the full match.
func buildListingPipeline(p listingParams) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "username", Value: p.username},
			{Key: "email", Value: p.email},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "videos"},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "ownerId"},
			{Key: "as", Value: "videos"},
		}}},
		bson.D{{Key: "$unwind", Value: "$videos"}},
	}

	filter := bson.D{}
	if p.query != "" {
		filter = append(filter, bson.E{Key: "videos.title", Value: primitive.Regex{
			Pattern: regexp.QuoteMeta(p.query),
			Options: "i",
		}})
	}
	if p.owner != nil {
		filter = append(filter, bson.E{Key: "videos.ownerId", Value: *p.owner})
	}
	if len(filter) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: filter}})
	}

	dir := -1
	if p.sortAsc {
		dir = 1
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$videos"}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: p.sortBy, Value: dir}}}},
		bson.D{{Key: "$facet", Value: bson.D{
			{Key: "items", Value: bson.A{
				bson.D{{Key: "$skip", Value: (p.page - 1) * p.limit}},
				bson.D{{Key: "$limit", Value: p.limit}},
			}},
			{Key: "total", Value: bson.A{
				bson.D{{Key: "$count", Value: "count"}},
			}},
		}}},
	)
	return pipeline
}
