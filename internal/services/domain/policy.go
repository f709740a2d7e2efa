package domain

import "strings"

// VerifyFunc compares a plaintext password against a stored hash. The hash
// computation itself is an external collaborator; the policy only consumes
// its verdict.
type VerifyFunc func(plainPassword, storedHash string) bool

// CanModifyRecord decides whether the actor may mutate the target service's
// record. Self-service is always allowed (names compared case-insensitively);
// everything else requires the full role.
//
// The record check and the password check are deliberately asymmetric: this
// one raises a typed error the caller surfaces directly, while
// CanModifyPassword returns a plain verdict the caller folds into a broader
// update decision.
func CanModifyRecord(actorName string, actorRole Role, targetName string) error {
	if strings.TrimSpace(targetName) == "" {
		return ErrTargetRequired
	}

	if strings.EqualFold(actorName, targetName) {
		return nil
	}

	if actorRole != FullRole {
		return ErrModificationDenied
	}

	return nil
}

// CanModifyPassword decides whether the actor may set a new password on the
// target. The full role bypasses the old-password check entirely. Otherwise
// the supplied old password must verify against the stored hash; a missing
// hash or a failed verification is a normal "not permitted" outcome, not an
// error.
func CanModifyPassword(
	targetName string,
	actorRole Role,
	suppliedOldPassword string,
	storedPasswordHash string,
	verify VerifyFunc,
) (bool, error) {
	if strings.TrimSpace(targetName) == "" {
		return false, ErrTargetRequired
	}

	if actorRole == FullRole {
		return true, nil
	}

	if storedPasswordHash == "" || verify == nil {
		return false, nil
	}

	return verify(suppliedOldPassword, storedPasswordHash), nil
}

// PasswordChangeRequested reports whether an update carries a password change:
// a new hash is present, non-blank, and differs case-insensitively from the
// old one. Used upstream to decide whether CanModifyPassword needs to run at all.
func PasswordChangeRequested(newHash, oldHash string) bool {
	if strings.TrimSpace(newHash) == "" {
		return false
	}
	return !strings.EqualFold(newHash, oldHash)
}
