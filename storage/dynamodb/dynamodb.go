// Package dynamodb implements dbcache.Index against a DynamoDB table:
// a *dynamodb.Client held directly by Index, with
// PK/SK item shapes, attributevalue (un)marshaling, and every client
// call wrapped by a circuit breaker so a degraded table fails fast
// instead of stalling every search.
//
// Posting lists are stored as a single binary attribute holding the
// roaring-serialized bitmap (bitmap.Bitmap.MarshalBinary), not as a
// DynamoDB Number Set — a search-sized posting list is exactly the
// payload roaring is built to compress.
//
// Key encodings:
//   - word items: PK="WORD", SK=the word's bytes (binary) —
//     begins_with(SK, prefix) on this shape backs WordPrefixDocids.
//   - word-pair-proximity items: PK="PAIR", SK=[prox u8][w1][0x00][w2]
//     (binary), so the key itself sorts proximity-primary.
//   - word-attribute items: PK="WORDATTR", SK=[word][0x00][attr u16 BE]
//     (binary). This is a different access pattern from a
//     document-fields key (which is keyed by document id for a
//     docid->field forward lookup, not by word for this inverted
//     lookup); see DESIGN.md.
package dynamodb

import (
	"context"
	"encoding/binary"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sony/gobreaker"

	"github.com/vuthanhtung2412/rankgraph/apperror"
	"github.com/vuthanhtung2412/rankgraph/bitmap"
	"github.com/vuthanhtung2412/rankgraph/dbcache"
)

var _ dbcache.Index = (*Index)(nil)

const (
	pkWord     = "WORD"
	pkPair     = "PAIR"
	pkWordAttr = "WORDATTR"
)

// item is the on-wire shape of every posting-list row: a partition key
// naming the lookup kind, a sort key carrying that lookup's encoded
// identity, and the serialized docid bitmap.
type item struct {
	PK     string `dynamodbav:"PK"`
	SK     []byte `dynamodbav:"SK"`
	Docids []byte `dynamodbav:"Docids"`
}

// Index is a DynamoDB-backed dbcache.Index. dbcache.Index's lookups
// carry no context.Context parameter, modeling them as pure functions
// of a fixed snapshot; Index instead fixes one ctx at construction,
// since a DatabaseCache — and therefore the Index behind it — is
// exclusive to one search, so that search's own request context is
// the right one to fix.
type Index struct {
	client  *dynamodb.Client
	table   string
	ctx     context.Context
	breaker *gobreaker.CircuitBreaker
}

// Config names the table an Index reads, plus the circuit breaker
// policy guarding it.
type Config struct {
	TableName        string
	MaxRequests      uint32
	FailureThreshold float64
	MinRequests      uint32
}

// New builds an Index over client scoped to ctx, tripping its circuit
// breaker once at least cfg.MinRequests requests have been counted and
// the failure ratio among them reaches cfg.FailureThreshold, the same
// pattern used at the service's HTTP boundary, applied here to the
// storage boundary instead. Settings.Interval is left at zero, so the
// counts accumulate for as long as the breaker stays closed rather than
// over a rolling window.
func New(ctx context.Context, client *dynamodb.Client, cfg Config) *Index {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "dynamodb-index:" + cfg.TableName,
		MaxRequests: cfg.MaxRequests,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureThreshold
		},
	})
	return &Index{client: client, table: cfg.TableName, ctx: ctx, breaker: breaker}
}

func (idx *Index) getPosting(pk string, sk []byte) (bitmap.Bitmap, error) {
	result, err := idx.breaker.Execute(func() (interface{}, error) {
		key, err := attributevalue.MarshalMap(struct {
			PK string `dynamodbav:"PK"`
			SK []byte `dynamodbav:"SK"`
		}{PK: pk, SK: sk})
		if err != nil {
			return bitmap.Bitmap{}, err
		}

		out, err := idx.client.GetItem(idx.ctx, &dynamodb.GetItemInput{
			TableName: aws.String(idx.table),
			Key:       key,
		})
		if err != nil {
			return bitmap.Bitmap{}, err
		}
		if out.Item == nil {
			return bitmap.New(), nil
		}

		var it item
		if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
			return bitmap.Bitmap{}, err
		}
		return bitmap.UnmarshalBinary(it.Docids)
	})
	if err != nil {
		return bitmap.Bitmap{}, err
	}
	return result.(bitmap.Bitmap), nil
}

// WordDocids implements dbcache.Index.
func (idx *Index) WordDocids(word string) (bitmap.Bitmap, error) {
	b, err := idx.getPosting(pkWord, []byte(word))
	if err != nil {
		return bitmap.Bitmap{}, apperror.StorageFailuref(err, "dynamodb word_docids(%q)", word)
	}
	return b, nil
}

// WordPrefixDocids implements dbcache.Index via a begins_with query on
// the word partition's sort key.
func (idx *Index) WordPrefixDocids(prefix string) (bitmap.Bitmap, error) {
	result, err := idx.breaker.Execute(func() (interface{}, error) {
		out, err := idx.client.Query(idx.ctx, &dynamodb.QueryInput{
			TableName:              aws.String(idx.table),
			KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :prefix)"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pk":     &types.AttributeValueMemberS{Value: pkWord},
				":prefix": &types.AttributeValueMemberB{Value: []byte(prefix)},
			},
		})
		if err != nil {
			return bitmap.Bitmap{}, err
		}

		union := bitmap.New()
		for _, rawItem := range out.Items {
			var it item
			if err := attributevalue.UnmarshalMap(rawItem, &it); err != nil {
				return bitmap.Bitmap{}, err
			}
			b, err := bitmap.UnmarshalBinary(it.Docids)
			if err != nil {
				return bitmap.Bitmap{}, err
			}
			union = union.Or(b)
		}
		return union, nil
	})
	if err != nil {
		return bitmap.Bitmap{}, apperror.StorageFailuref(err, "dynamodb word_prefix_docids(%q)", prefix)
	}
	return result.(bitmap.Bitmap), nil
}

// WordPairProximityDocids implements dbcache.Index, encoding the sort
// key as [prox][w1][0x00][w2].
func (idx *Index) WordPairProximityDocids(w1, w2 string, prox bitmap.Proximity) (bitmap.Bitmap, error) {
	sk := pairSortKey(w1, w2, prox)
	b, err := idx.getPosting(pkPair, sk)
	if err != nil {
		return bitmap.Bitmap{}, apperror.StorageFailuref(err, "dynamodb word_pair_proximity_docids(%q, %q, %d)", w1, w2, prox)
	}
	return b, nil
}

// WordAttributeDocids implements dbcache.Index.
func (idx *Index) WordAttributeDocids(word string, attr bitmap.AttributeID) (bitmap.Bitmap, error) {
	sk := wordAttrSortKey(word, attr)
	b, err := idx.getPosting(pkWordAttr, sk)
	if err != nil {
		return bitmap.Bitmap{}, apperror.StorageFailuref(err, "dynamodb word_attribute_docids(%q, %d)", word, attr)
	}
	return b, nil
}

// pairSortKey builds the word-pair-proximity key: 1 + |w1| + 1 +
// |w2| bytes, proximity sorting primary over the lexicographic byte
// string.
func pairSortKey(w1, w2 string, prox bitmap.Proximity) []byte {
	key := make([]byte, 0, 1+len(w1)+1+len(w2))
	key = append(key, byte(prox))
	key = append(key, w1...)
	key = append(key, 0x00)
	key = append(key, w2...)
	return key
}

// wordAttrSortKey builds the inverted word-attribute posting key:
// [word][0x00][attr u16 BE].
func wordAttrSortKey(word string, attr bitmap.AttributeID) []byte {
	key := make([]byte, 0, len(word)+1+2)
	key = append(key, word...)
	key = append(key, 0x00)
	key = binary.BigEndian.AppendUint16(key, attr)
	return key
}
