package bolt

import (
	"encoding/json"

	bbolt "go.etcd.io/bbolt"
)

func putRecord(tx *bbolt.Tx, bucket, id string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return tx.Bucket([]byte(bucket)).Put([]byte(id), payload)
}
