package cvc

import (
	"github.com/google/uuid"

	"github.com/tos-network/btok/internal/log"
)

// Issue implements the Issuer component: it unwraps the
// parent certificate as self-trusted input, checks the parent keypair
// is consistent, runs the child/parent linkage checks, and delegates
// to Wrap for the child certificate.
func Issue(child *CVC, parentCertBytes, parentPriv []byte) ([]byte, error) {
	opID := uuid.NewString()
	logger := log.Root.With("op", "issue", "issue_id", opID)

	parent, err := Unwrap(parentCertBytes, nil)
	if err != nil {
		logger.Error("issue: parent certificate rejected", "err", err)
		return nil, err
	}

	if err := valKeypair(parentPriv, parent.Pubkey); err != nil {
		logger.Error("issue: parent keypair does not match certificate", "err", err)
		return nil, err
	}

	if err := Check2(child, parent); err != nil {
		logger.Error("issue: child/parent linkage rejected", "err", err)
		return nil, err
	}

	childCert, err := Wrap(child, parentPriv)
	if err != nil {
		logger.Error("issue: child certificate wrap failed", "err", err)
		return nil, err
	}
	logger.Info("issue: child certificate issued", "holder", child.Holder)
	return childCert, nil
}
