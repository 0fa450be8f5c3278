package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/de-tools/tag-atlas/pkg/models/domain"
	"github.com/de-tools/tag-atlas/pkg/services/audit"
	"github.com/de-tools/tag-atlas/pkg/services/source"

	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

const DefaultRegion = "us-east-1"

// scopeTagKey groups AWS resources the way an Azure resource group does;
// a scoped audit only sees resources whose resource-group tag matches.
const scopeTagKey = "resource-group"

// Source lists taggable AWS resources (EC2 instances, S3 buckets, RDS
// instances) in one region.
type Source struct {
	region    string
	ec2Client *ec2.Client
	s3Client  *s3.Client
	rdsClient *rds.Client
}

// SourceFactory builds an AWS source for the registry.
func SourceFactory(ctx context.Context, cfg source.Config) (audit.ResourceSource, error) {
	region := cfg.Region
	if region == "" {
		region = DefaultRegion
	}
	return NewSource(ctx, region)
}

// NewSource creates a source using the default AWS config chain.
func NewSource(ctx context.Context, region string) (*Source, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	return &Source{
		region:    region,
		ec2Client: ec2.NewFromConfig(cfg),
		s3Client:  s3.NewFromConfig(cfg),
		rdsClient: rds.NewFromConfig(cfg),
	}, nil
}

// Authenticate verifies credentials with a cheap region listing.
func (s *Source) Authenticate(ctx context.Context) error {
	if _, err := s.ec2Client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{}); err != nil {
		return fmt.Errorf("failed to verify AWS credentials: %w", err)
	}
	return nil
}

func (s *Source) ListResources(ctx context.Context, scope string) ([]domain.ResourceRecord, error) {
	var records []domain.ResourceRecord

	instances, err := s.listInstances(ctx, scope)
	if err != nil {
		return nil, err
	}
	records = append(records, instances...)

	buckets, err := s.listBuckets(ctx, scope)
	if err != nil {
		return nil, err
	}
	records = append(records, buckets...)

	databases, err := s.listDBInstances(ctx, scope)
	if err != nil {
		return nil, err
	}
	records = append(records, databases...)

	return records, nil
}

func (s *Source) listInstances(ctx context.Context, scope string) ([]domain.ResourceRecord, error) {
	input := &ec2.DescribeInstancesInput{}
	if scope != "" {
		input.Filters = []ec2types.Filter{
			{
				Name:   aws.String("tag:" + scopeTagKey),
				Values: []string{scope},
			},
		}
	}

	var records []domain.ResourceRecord
	paginator := ec2.NewDescribeInstancesPaginator(s.ec2Client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error querying EC2 instances: %w", err)
		}

		for _, reservation := range page.Reservations {
			for _, instance := range reservation.Instances {
				tags := make(map[string]string, len(instance.Tags))
				for _, t := range instance.Tags {
					tags[aws.ToString(t.Key)] = aws.ToString(t.Value)
				}

				name := tags["Name"]
				if name == "" {
					name = aws.ToString(instance.InstanceId)
				}

				location := s.region
				if instance.Placement != nil && instance.Placement.AvailabilityZone != nil {
					location = *instance.Placement.AvailabilityZone
				}

				records = append(records, domain.ResourceRecord{
					Name:     name,
					Type:     "AWS::EC2::Instance",
					ID:       aws.ToString(instance.InstanceId),
					Location: location,
					Tags:     tags,
				})
			}
		}
	}
	return records, nil
}

func (s *Source) listBuckets(ctx context.Context, scope string) ([]domain.ResourceRecord, error) {
	out, err := s.s3Client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("error listing S3 buckets: %w", err)
	}

	var records []domain.ResourceRecord
	for _, bucket := range out.Buckets {
		name := aws.ToString(bucket.Name)

		tags := map[string]string{}
		// GetBucketTagging fails with NoSuchTagSet for untagged buckets;
		// either way the bucket is simply untagged.
		tagging, err := s.s3Client.GetBucketTagging(ctx, &s3.GetBucketTaggingInput{Bucket: bucket.Name})
		if err == nil {
			for _, t := range tagging.TagSet {
				tags[aws.ToString(t.Key)] = aws.ToString(t.Value)
			}
		}

		if scope != "" && tags[scopeTagKey] != scope {
			continue
		}

		records = append(records, domain.ResourceRecord{
			Name:     name,
			Type:     "AWS::S3::Bucket",
			ID:       "arn:aws:s3:::" + name,
			Location: s.region,
			Tags:     tags,
		})
	}
	return records, nil
}

func (s *Source) listDBInstances(ctx context.Context, scope string) ([]domain.ResourceRecord, error) {
	var records []domain.ResourceRecord
	paginator := rds.NewDescribeDBInstancesPaginator(s.rdsClient, &rds.DescribeDBInstancesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error querying RDS instances: %w", err)
		}

		for _, db := range page.DBInstances {
			tags := make(map[string]string, len(db.TagList))
			for _, t := range db.TagList {
				tags[aws.ToString(t.Key)] = aws.ToString(t.Value)
			}

			if scope != "" && tags[scopeTagKey] != scope {
				continue
			}

			location := s.region
			if db.AvailabilityZone != nil {
				location = *db.AvailabilityZone
			}

			records = append(records, domain.ResourceRecord{
				Name:     aws.ToString(db.DBInstanceIdentifier),
				Type:     "AWS::RDS::DBInstance",
				ID:       aws.ToString(db.DBInstanceArn),
				Location: location,
				Tags:     tags,
			})
		}
	}
	return records, nil
}
