package appsync

import (
	"encoding/json"
	"fmt"
)

// AuthStrategy is the default authorization strategy reported by a
// Cognito user pool identity.
type AuthStrategy string

const (
	Allow AuthStrategy = "ALLOW"
	Deny  AuthStrategy = "DENY"
)

// IdentityKind names the authorization mode an event arrived under.
type IdentityKind string

const (
	IdentityCognito IdentityKind = "AMAZON_COGNITO_USER_POOLS"
	IdentityIAM     IdentityKind = "AWS_IAM"
	IdentityOIDC    IdentityKind = "OPENID_CONNECT"
	IdentityLambda  IdentityKind = "AWS_LAMBDA"
	IdentityAPIKey  IdentityKind = "API_KEY"
)

// CognitoIdentity is the identity attached by Cognito user pool
// authorization.
type CognitoIdentity struct {
	Sub                 string         `json:"sub"`
	Username            string         `json:"username"`
	Issuer              string         `json:"issuer"`
	DefaultAuthStrategy AuthStrategy   `json:"defaultAuthStrategy"`
	SourceIP            []string       `json:"sourceIp"`
	Groups              []string       `json:"groups"`
	Claims              map[string]any `json:"claims"`
}

// FederatedIdentity holds the Cognito identity pool attributes present
// on an IAM identity when the caller authenticated through a federated
// identity pool.
type FederatedIdentity struct {
	IdentityID           string `json:"cognitoIdentityId"`
	IdentityPoolID       string `json:"cognitoIdentityPoolId"`
	IdentityAuthType     string `json:"cognitoIdentityAuthType"`
	IdentityAuthProvider string `json:"cognitoIdentityAuthProvider"`
}

// IAMIdentity is the identity attached by IAM (SigV4) authorization.
// Federated is nil unless the request came through a Cognito identity
// pool.
type IAMIdentity struct {
	AccountID string             `json:"accountId"`
	UserARN   string             `json:"userArn"`
	Username  string             `json:"username"`
	SourceIP  []string           `json:"sourceIp"`
	Federated *FederatedIdentity `json:"-"`
}

// OIDCIdentity is the identity attached by OpenID Connect
// authorization.
type OIDCIdentity struct {
	Sub    string         `json:"sub"`
	Issuer string         `json:"issuer"`
	Claims map[string]any `json:"claims"`
}

// Audience returns the aud claim normalized to a list: providers emit
// it as either a single string or an array of strings.
func (o *OIDCIdentity) Audience() []string {
	switch aud := o.Claims["aud"].(type) {
	case string:
		return []string{aud}
	case []any:
		out := make([]string, 0, len(aud))
		for _, v := range aud {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// LambdaIdentity is the identity attached by a Lambda authorizer: the
// opaque resolver context the authorizer returned.
type LambdaIdentity struct {
	ResolverContext json.RawMessage `json:"resolverContext"`
}

// Identity is the authorization identity of an AppSync event. Exactly
// one of the pointer fields is set, except for API key authorization
// where all of them are nil.
//
// The identity object on the wire is untagged, so decoding matches
// structurally, in this order: Cognito (keyed on defaultAuthStrategy),
// IAM (keyed on accountId/userArn), OIDC (keyed on claims+sub+issuer),
// Lambda (keyed on resolverContext), and finally API key for null or
// anything unmatched.
type Identity struct {
	Cognito *CognitoIdentity
	IAM     *IAMIdentity
	OIDC    *OIDCIdentity
	Lambda  *LambdaIdentity
}

// Kind reports which authorization mode the identity represents.
func (id *Identity) Kind() IdentityKind {
	switch {
	case id.Cognito != nil:
		return IdentityCognito
	case id.IAM != nil:
		return IdentityIAM
	case id.OIDC != nil:
		return IdentityOIDC
	case id.Lambda != nil:
		return IdentityLambda
	}
	return IdentityAPIKey
}

func (id *Identity) UnmarshalJSON(b []byte) error {
	*id = Identity{}
	if string(b) == "null" {
		return nil
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(b, &probe); err != nil {
		return fmt.Errorf("decode identity: %w", err)
	}
	has := func(keys ...string) bool {
		for _, k := range keys {
			if _, ok := probe[k]; !ok {
				return false
			}
		}
		return true
	}
	switch {
	case has("defaultAuthStrategy", "sub", "issuer", "username"):
		id.Cognito = &CognitoIdentity{}
		return json.Unmarshal(b, id.Cognito)
	case has("accountId") || has("userArn"):
		iam := &IAMIdentity{}
		if err := json.Unmarshal(b, iam); err != nil {
			return err
		}
		if _, ok := probe["cognitoIdentityId"]; ok {
			fed := &FederatedIdentity{}
			if err := json.Unmarshal(b, fed); err != nil {
				return err
			}
			iam.Federated = fed
		}
		id.IAM = iam
		return nil
	case has("claims", "sub", "issuer"):
		id.OIDC = &OIDCIdentity{}
		return json.Unmarshal(b, id.OIDC)
	case has("resolverContext"):
		id.Lambda = &LambdaIdentity{}
		return json.Unmarshal(b, id.Lambda)
	}
	return nil
}

func (id Identity) MarshalJSON() ([]byte, error) {
	switch {
	case id.Cognito != nil:
		return json.Marshal(id.Cognito)
	case id.IAM != nil:
		if id.IAM.Federated == nil {
			return json.Marshal(id.IAM)
		}
		merged := struct {
			*IAMIdentity
			*FederatedIdentity
		}{id.IAM, id.IAM.Federated}
		return json.Marshal(merged)
	case id.OIDC != nil:
		return json.Marshal(id.OIDC)
	case id.Lambda != nil:
		return json.Marshal(id.Lambda)
	}
	return []byte("null"), nil
}
