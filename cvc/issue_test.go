package cvc

import (
	"testing"

	"github.com/tos-network/btok/internal/cvctest"
)

func TestIssueChildCertificate(t *testing.T) {
	parentFx := cvctest.New(10, cvctest.Size256)
	parent := &CVC{
		Authority: parentFx.Authority,
		Holder:    parentFx.Holder,
		From:      parentFx.From,
		Until:     parentFx.Until,
	}
	parentCert, err := Wrap(parent, parentFx.Priv)
	if err != nil {
		t.Fatalf("Wrap(parent): %v", err)
	}

	childFx := cvctest.New(11, cvctest.Size256)
	child := &CVC{
		Authority: parent.Holder, // required: child.authority == parent.holder
		Holder:    childFx.Holder,
		From:      parent.From, // within [parent.from, parent.until]
		Until:     parent.Until,
	}

	childCert, err := Issue(child, parentCert, parentFx.Priv)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	got, err := Unwrap(childCert, child.Pubkey)
	if err != nil {
		t.Fatalf("Unwrap(child): %v", err)
	}
	if got.Authority != parent.Holder {
		t.Fatalf("child authority = %q, want %q", got.Authority, parent.Holder)
	}
}

func TestIssueRejectsWrongParentKey(t *testing.T) {
	parentFx := cvctest.New(20, cvctest.Size256)
	parent := &CVC{
		Authority: parentFx.Authority,
		Holder:    parentFx.Holder,
		From:      parentFx.From,
		Until:     parentFx.Until,
	}
	parentCert, err := Wrap(parent, parentFx.Priv)
	if err != nil {
		t.Fatalf("Wrap(parent): %v", err)
	}

	otherFx := cvctest.New(21, cvctest.Size256)
	childFx := cvctest.New(22, cvctest.Size256)
	child := &CVC{
		Authority: parent.Holder,
		Holder:    childFx.Holder,
		From:      parent.From,
		Until:     parent.Until,
	}

	if _, err := Issue(child, parentCert, otherFx.Priv); err == nil {
		t.Fatalf("expected Issue to reject a private key that doesn't match the parent certificate")
	}
}

func TestIssueRejectsLinkageMismatch(t *testing.T) {
	parentFx := cvctest.New(30, cvctest.Size256)
	parent := &CVC{
		Authority: parentFx.Authority,
		Holder:    parentFx.Holder,
		From:      parentFx.From,
		Until:     parentFx.Until,
	}
	parentCert, err := Wrap(parent, parentFx.Priv)
	if err != nil {
		t.Fatalf("Wrap(parent): %v", err)
	}

	childFx := cvctest.New(31, cvctest.Size256)
	child := &CVC{
		Authority: "MISMATCHED1", // deliberately != parent.Holder
		Holder:    childFx.Holder,
		From:      parent.From,
		Until:     parent.Until,
	}

	if _, err := Issue(child, parentCert, parentFx.Priv); err == nil {
		t.Fatalf("expected Issue to reject child.authority != parent.holder")
	}
}
