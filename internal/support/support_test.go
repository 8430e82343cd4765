package support

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("FWADMIN_TEST_VAR", "set")

	if got := GetEnv("FWADMIN_TEST_VAR", "fallback"); got != "set" {
		t.Fatalf("GetEnv returned %q, want %q", got, "set")
	}
	if got := GetEnv("FWADMIN_TEST_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("GetEnv returned %q, want %q", got, "fallback")
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("FWADMIN_TEST_INT", "1234")
	t.Setenv("FWADMIN_TEST_BAD_INT", "not-a-number")

	if got := GetEnvInt("FWADMIN_TEST_INT", 1); got != 1234 {
		t.Fatalf("GetEnvInt returned %d, want 1234", got)
	}
	if got := GetEnvInt("FWADMIN_TEST_BAD_INT", 7); got != 7 {
		t.Fatalf("GetEnvInt returned %d, want fallback 7", got)
	}
	if got := GetEnvInt("FWADMIN_TEST_MISSING", 7); got != 7 {
		t.Fatalf("GetEnvInt returned %d, want fallback 7", got)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword returned %v, want nil", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("HashPassword returned the plaintext password")
	}

	if !CheckPasswordHash("correct horse battery staple", hash) {
		t.Fatal("CheckPasswordHash rejected the correct password")
	}
	if CheckPasswordHash("wrong password", hash) {
		t.Fatal("CheckPasswordHash accepted a wrong password")
	}
}
