package airdropstore

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"sync"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	lvdbErrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
	"go.uber.org/zap"

	"github.com/chainsafe/airdrop-registry/pkg/airdrop"
)

// Key layout:
//
//	elig:<chain>:<normalized address> -> EligibilityEntry JSON
//	reg:<uint64 big-endian seq>       -> RegisteredWallet JSON
//	src:<chain>:<normalized address>  -> seq of the owning record
//	meta:seq                          -> last assigned seq
var (
	eligibilityPrefix  = []byte("elig:")
	registrationPrefix = []byte("reg:")
	sourcePrefix       = []byte("src:")
	seqKey             = []byte("meta:seq")
)

const (
	levelDBHandles = 256
	levelDBCacheMB = 8
)

type levelDBStore struct {
	db     *leveldb.DB
	mu     sync.Mutex
	logger *zap.Logger
}

// NewLevelDBStore opens (or creates) a LevelDB store at path, recovering the
// database if its manifest is corrupted.
func NewLevelDBStore(path string, logger *zap.Logger) (*levelDBStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := leveldb.OpenFile(path, &opt.Options{
		OpenFilesCacheCapacity: levelDBHandles,
		BlockCacheCapacity:     levelDBCacheMB / 2 * opt.MiB,
		WriteBuffer:            levelDBCacheMB / 4 * opt.MiB, // Two of these are used internally
		Filter:                 filter.NewBloomFilter(10),
	})
	if _, corrupted := err.(*lvdbErrors.ErrCorrupted); corrupted {
		logger.Warn("LevelDB corrupted, attempting recovery", zap.String("path", path), zap.Error(err))
		db, err = leveldb.RecoverFile(path, nil)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "leveldb.OpenFile %s", path)
	}

	logger.Info("LevelDB store opened", zap.String("path", path))
	return &levelDBStore{db: db, logger: logger}, nil
}

func eligibilityKey(chain airdrop.Chain, address string) []byte {
	return []byte(string(eligibilityPrefix) + string(chain) + ":" + chain.NormalizeAddress(address))
}

func eligibilityChainPrefix(chain airdrop.Chain) []byte {
	return []byte(string(eligibilityPrefix) + string(chain) + ":")
}

func sourceKey(chain airdrop.Chain, address string) []byte {
	return []byte(string(sourcePrefix) + string(chain) + ":" + chain.NormalizeAddress(address))
}

func registrationKey(seq uint64) []byte {
	key := make([]byte, len(registrationPrefix)+8)
	copy(key, registrationPrefix)
	binary.BigEndian.PutUint64(key[len(registrationPrefix):], seq)
	return key
}

func (s *levelDBStore) LoadEligibility(_ context.Context, chain airdrop.Chain) ([]airdrop.EligibilityEntry, error) {
	if _, err := airdrop.ParseChain(string(chain)); err != nil {
		return nil, err
	}

	iter := s.db.NewIterator(util.BytesPrefix(eligibilityChainPrefix(chain)), nil)
	defer iter.Release()

	var entries []airdrop.EligibilityEntry
	for iter.Next() {
		var e airdrop.EligibilityEntry
		if err := json.Unmarshal(iter.Value(), &e); err != nil {
			return nil, errors.Wrapf(err, "decode eligibility entry %s", iter.Key())
		}
		entries = append(entries, e)
	}
	if err := iter.Error(); err != nil {
		return nil, errors.Wrap(err, "iterate eligibility entries")
	}
	return entries, nil
}

func (s *levelDBStore) LoadRegistrations(_ context.Context) ([]airdrop.RegisteredWallet, error) {
	iter := s.db.NewIterator(util.BytesPrefix(registrationPrefix), nil)
	defer iter.Release()

	var records []airdrop.RegisteredWallet
	for iter.Next() {
		var rec airdrop.RegisteredWallet
		if err := json.Unmarshal(iter.Value(), &rec); err != nil {
			return nil, errors.Wrapf(err, "decode registration %x", iter.Key())
		}
		records = append(records, rec)
	}
	if err := iter.Error(); err != nil {
		return nil, errors.Wrap(err, "iterate registrations")
	}
	return records, nil
}

func (s *levelDBStore) AppendRegistration(_ context.Context, rec *airdrop.RegisteredWallet) error {
	if err := validateRecord(rec); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var sources [][]byte
	if rec.AvailAddress != "" {
		sources = append(sources, sourceKey(airdrop.ChainAvail, rec.AvailAddress))
	}
	if rec.EVMAddress != "" {
		sources = append(sources, sourceKey(airdrop.ChainEVM, rec.EVMAddress))
	}
	for _, key := range sources {
		exists, err := s.db.Has(key, nil)
		if err != nil {
			return errors.Wrapf(err, "lookup %s", key)
		}
		if exists {
			return errors.Wrapf(ErrDuplicateSource, "%s", key[len(sourcePrefix):])
		}
	}

	seq, err := s.nextSeq()
	if err != nil {
		return err
	}

	value, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "encode registration")
	}

	seqBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(seqBytes, seq)

	batch := new(leveldb.Batch)
	batch.Put(registrationKey(seq), value)
	for _, key := range sources {
		batch.Put(key, seqBytes)
	}
	batch.Put(seqKey, seqBytes)

	if err := s.db.Write(batch, &opt.WriteOptions{Sync: true}); err != nil {
		return errors.Wrap(err, "write registration")
	}
	return nil
}

func (s *levelDBStore) nextSeq() (uint64, error) {
	raw, err := s.db.Get(seqKey, nil)
	switch {
	case errors.Is(err, leveldb.ErrNotFound):
		return 1, nil
	case err != nil:
		return 0, errors.Wrap(err, "read sequence")
	case len(raw) != 8:
		return 0, errors.Errorf("corrupted sequence value of %d bytes", len(raw))
	}
	return binary.BigEndian.Uint64(raw) + 1, nil
}

func (s *levelDBStore) ReplaceEligibility(_ context.Context, chain airdrop.Chain, entries []airdrop.EligibilityEntry) error {
	if _, err := airdrop.ParseChain(string(chain)); err != nil {
		return err
	}
	if err := validateEntries(chain, entries); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	batch := new(leveldb.Batch)

	iter := s.db.NewIterator(util.BytesPrefix(eligibilityChainPrefix(chain)), nil)
	for iter.Next() {
		batch.Delete(append([]byte{}, iter.Key()...))
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		return errors.Wrap(err, "iterate eligibility entries")
	}

	for _, e := range entries {
		value, err := json.Marshal(e)
		if err != nil {
			return errors.Wrap(err, "encode eligibility entry")
		}
		batch.Put(eligibilityKey(chain, e.Address), value)
	}

	if err := s.db.Write(batch, &opt.WriteOptions{Sync: true}); err != nil {
		return errors.Wrapf(err, "replace %s eligibility", chain)
	}
	return nil
}

func (s *levelDBStore) Close() error {
	return s.db.Close()
}
