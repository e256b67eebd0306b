package intent

import "strings"

// Keyword sets for the optional response sections. They are checked
// against the raw message independently of Classify, so a message tagged
// nextjs-fullstack can still carry payment guidance.
var (
	PaymentKeywords = []string{
		"payment",
		"payment gateway",
		"razorpay",
		"payu",
		"cashfree",
		"instamojo",
	}

	InfrastructureKeywords = []string{
		"proxmox",
		"virtual machine",
		"vm",
		"virtualization",
		"infrastructure",
	}
)

// LooksLikePayment reports whether message mentions a payment gateway or
// payments in general.
func LooksLikePayment(message string) bool {
	return containsAny(strings.ToLower(message), PaymentKeywords...)
}

// LooksLikeInfrastructure reports whether message mentions virtualization,
// VMs, Proxmox or infrastructure.
func LooksLikeInfrastructure(message string) bool {
	return containsAny(strings.ToLower(message), InfrastructureKeywords...)
}
