package store

import (
	"context"
	"fmt"

	"github.com/prepdeck/prepdeck/ent"
	"github.com/prepdeck/prepdeck/ent/credential"
)

// credentialRepo implements CredentialRepo using the ent client.
type credentialRepo struct {
	client *ent.Client
}

func (r *credentialRepo) Get(ctx context.Context, key string) (string, error) {
	c, err := r.client.Credential.Query().
		Where(credential.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("query credential %q: %w", key, err)
	}
	return c.Value, nil
}

func (r *credentialRepo) Set(ctx context.Context, key, value string) error {
	n, err := r.client.Credential.Update().
		Where(credential.Key(key)).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update credential %q: %w", key, err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.Credential.Create().
		SetKey(key).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create credential %q: %w", key, err)
	}
	return nil
}

func (r *credentialRepo) Delete(ctx context.Context, key string) error {
	_, err := r.client.Credential.Delete().
		Where(credential.Key(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete credential %q: %w", key, err)
	}
	return nil
}

func (r *credentialRepo) All(ctx context.Context) (map[string]string, error) {
	creds, err := r.client.Credential.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query credentials: %w", err)
	}
	out := make(map[string]string, len(creds))
	for _, c := range creds {
		out[c.Key] = c.Value
	}
	return out, nil
}
