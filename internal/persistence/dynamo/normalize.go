package dynamo

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/soapdogg/travel-personal-assistant/internal/domain"
)

// normalizeSets converts the persisted sets attribute to its native list
// form. Writers always store a JSON string, but older rows hold a native
// list; any other shape is passed through untouched. A string that is not
// valid JSON fails the whole read, matching the legacy contract.
func normalizeSets(attr types.AttributeValue) (any, error) {
	switch v := attr.(type) {
	case nil:
		return nil, nil
	case *types.AttributeValueMemberS:
		var sets []domain.Set
		if err := json.Unmarshal([]byte(v.Value), &sets); err != nil {
			return nil, fmt.Errorf("sets string is not valid JSON: %w", err)
		}
		return sets, nil
	case *types.AttributeValueMemberL:
		var sets []domain.Set
		if err := attributevalue.Unmarshal(v, &sets); err != nil {
			return nil, fmt.Errorf("sets list: %w", err)
		}
		return sets, nil
	default:
		var raw any
		if err := attributevalue.Unmarshal(attr, &raw); err != nil {
			return nil, fmt.Errorf("sets attribute: %w", err)
		}
		return raw, nil
	}
}
