package infra

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/svmhdvn/private-channel-bot/domain/model"
)

type DynamoDB struct {
	db        *dynamodb.Client
	tableName string
}

const defaultTableNamePrefix = "private_channel_bot"

func NewDynamoDB() (*DynamoDB, error) {
	tableName := defaultTableNamePrefix + "_channel"
	if os.Getenv("DYNAMO_TABLE_NAME_PREFIX") != "" {
		tableName = os.Getenv("DYNAMO_TABLE_NAME_PREFIX") + "_channel"
	}
	if os.Getenv("DYNAMO_CHANNEL_TABLE_NAME") != "" {
		tableName = os.Getenv("DYNAMO_CHANNEL_TABLE_NAME")
	}

	var db *dynamodb.Client
	if os.Getenv("DYNAMO_LOCAL") != "" {
		cfg, err := config.LoadDefaultConfig(context.TODO(),
			config.WithRegion("dummy"),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("dummy", "dummy", "dummy")),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %v", err)
		}

		endpoint := "http://localhost:8000"
		if os.Getenv("DYNAMO_LOCAL") != "true" {
			endpoint = os.Getenv("DYNAMO_LOCAL")
		}
		db = dynamodb.NewFromConfig(cfg,
			func(o *dynamodb.Options) {
				o.BaseEndpoint = aws.String(endpoint)
			},
		)
	} else {
		cfg, err := config.LoadDefaultConfig(context.TODO())
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %v", err)
		}

		db = dynamodb.NewFromConfig(cfg)
	}
	d := &DynamoDB{
		db:        db,
		tableName: tableName,
	}
	if os.Getenv("DYNAMO_LOCAL") != "" {
		if err := d.EnsureTable(context.TODO()); err != nil {
			return nil, err
		}
	}
	return d, nil
}

const (
	waitInterval = 2 * time.Second // ポーリング間隔
	maxRetries   = 30              // 最大リトライ回数 (30回 = 約1分)
)

func (d *DynamoDB) EnsureTable(ctx context.Context) error {
	_, err := d.db.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(d.tableName),
	})
	if err == nil {
		// テーブルが既に存在する
		return nil
	}

	_, err = d.db.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(d.tableName),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		ProvisionedThroughput: &types.ProvisionedThroughput{
			ReadCapacityUnits:  aws.Int64(5),
			WriteCapacityUnits: aws.Int64(5),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create table %s: %v", d.tableName, err)
	}

	// テーブルがACTIVEになるまで待機
	for i := 0; i < maxRetries; i++ {
		out, err := d.db.DescribeTable(ctx, &dynamodb.DescribeTableInput{
			TableName: aws.String(d.tableName),
		})
		if err != nil {
			return fmt.Errorf("failed to describe table %s: %v", d.tableName, err)
		}

		if out.Table.TableStatus == types.TableStatusActive {
			return nil
		}

		time.Sleep(waitInterval)
	}

	return fmt.Errorf("table %s creation timed out", d.tableName)
}

func channelItem(ch *model.Channel) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id":            &types.AttributeValueMemberS{Value: ch.ID},
		"name":          &types.AttributeValueMemberS{Value: ch.Name},
		"owner_user_id": &types.AttributeValueMemberS{Value: ch.OwnerUserID},
		"organization":  &types.AttributeValueMemberS{Value: ch.Organization},
		"purpose":       &types.AttributeValueMemberS{Value: ch.Purpose},
		"topic":         &types.AttributeValueMemberS{Value: ch.Topic},
		"ts_created":    &types.AttributeValueMemberN{Value: strconv.FormatInt(ch.Created, 10)},
		"ts_expiry":     &types.AttributeValueMemberN{Value: strconv.FormatInt(ch.Expires, 10)},
	}
}

func channelFromItem(item map[string]types.AttributeValue) (*model.Channel, error) {
	created, err := getNumberValue(item, "ts_created")
	if err != nil {
		return nil, err
	}
	expires, err := getNumberValue(item, "ts_expiry")
	if err != nil {
		return nil, err
	}
	return &model.Channel{
		ID:           getStringValue(item, "id"),
		Name:         getStringValue(item, "name"),
		OwnerUserID:  getStringValue(item, "owner_user_id"),
		Organization: getStringValue(item, "organization"),
		Purpose:      getStringValue(item, "purpose"),
		Topic:        getStringValue(item, "topic"),
		Created:      created,
		Expires:      expires,
	}, nil
}

func getStringValue(item map[string]types.AttributeValue, key string) string {
	if v, ok := item[key].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func getNumberValue(item map[string]types.AttributeValue, key string) (int64, error) {
	if v, ok := item[key].(*types.AttributeValueMemberN); ok {
		return strconv.ParseInt(v.Value, 10, 64)
	}
	return 0, fmt.Errorf("failed to parse %s", key)
}

func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

func (d *DynamoDB) SaveChannel(ctx context.Context, ch *model.Channel) error {
	_, err := d.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(d.tableName),
		Item:                channelItem(ch),
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if isConditionalCheckFailed(err) {
		return fmt.Errorf("%w: %s", ErrChannelExists, ch.ID)
	}
	return err
}

func (d *DynamoDB) GetChannels(ctx context.Context) ([]model.Channel, error) {
	var channels []model.Channel

	paginator := dynamodb.NewScanPaginator(d.db, &dynamodb.ScanInput{
		TableName: aws.String(d.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			ch, err := channelFromItem(item)
			if err != nil {
				return nil, fmt.Errorf("failed to parse channel %s: %w", getStringValue(item, "id"), err)
			}
			channels = append(channels, *ch)
		}
	}

	// Scan は順序を保証しないのでここでソート
	sort.Slice(channels, func(i, j int) bool {
		return channels[i].Created < channels[j].Created
	})
	return channels, nil
}

func (d *DynamoDB) ExtendChannelExpiry(ctx context.Context, id string, by time.Duration) (*model.Channel, error) {
	out, err := d.db.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET ts_expiry = ts_expiry + :by"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":by": &types.AttributeValueMemberN{Value: strconv.FormatInt(int64(by/time.Second), 10)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if isConditionalCheckFailed(err) {
		return nil, fmt.Errorf("%w: %s", ErrChannelNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return channelFromItem(out.Attributes)
}

func (d *DynamoDB) RemoveChannels(ctx context.Context, channels []model.Channel) ([]model.Channel, error) {
	var removed []model.Channel
	for _, ch := range channels {
		_, err := d.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(d.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: ch.ID},
			},
			ConditionExpression: aws.String("ts_expiry = :expiry"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":expiry": &types.AttributeValueMemberN{Value: strconv.FormatInt(ch.Expires, 10)},
			},
		})
		if isConditionalCheckFailed(err) {
			// 読み取った後に延長されたか、既に削除されている
			continue
		}
		if err != nil {
			return removed, fmt.Errorf("failed to delete channel %s: %w", ch.ID, err)
		}
		removed = append(removed, ch)
	}
	return removed, nil
}
