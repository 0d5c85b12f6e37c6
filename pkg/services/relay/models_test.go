package relay_test

import (
	"encoding/json"

	"github.com/Azure/go-autorest/autorest/to"
	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/Azure/azure-arm-clients-go/pkg/core"
	. "github.com/Azure/azure-arm-clients-go/pkg/services/relay"
)

var _ = Describe("Models", func() {
	table.DescribeTable("provisioning state decoding",
		func(in string, want PrivateEndpointConnectionProvisioningState, known bool) {
			var props PrivateEndpointConnectionProperties
			Expect(json.Unmarshal([]byte(in), &props)).To(Succeed())
			Expect(props.ProvisioningState).To(Equal(want))
			Expect(props.ProvisioningState.IsKnown()).To(Equal(known))

			out, err := json.Marshal(props)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(MatchJSON(in))
		},
		table.Entry("known", `{"provisioningState":"Succeeded"}`, PrivateEndpointConnectionProvisioningStateSucceeded, true),
		table.Entry("unknown", `{"provisioningState":"Frobnicated"}`, PrivateEndpointConnectionProvisioningState("Frobnicated"), false),
	)

	It("keeps unknown enum values in nested payloads", func() {
		in := `{"properties":{"relayType":"Grpc","requiresTransportSecurity":true}}`
		var relay WcfRelay
		Expect(json.Unmarshal([]byte(in), &relay)).To(Succeed())
		Expect(relay.Properties.RelayType.IsKnown()).To(BeFalse())
		out, err := json.Marshal(relay)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(MatchJSON(in))
	})

	It("round trips a namespace", func() {
		in := `{
			"id": "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Relay/namespaces/contoso",
			"name": "contoso",
			"type": "Microsoft.Relay/Namespaces",
			"location": "West US",
			"tags": {"tag1": "value1"},
			"sku": {"name": "Standard", "tier": "Standard"},
			"systemData": {"createdBy": "user@contoso.com", "createdByType": "User", "createdAt": "2021-11-01T10:00:00Z"},
			"properties": {
				"provisioningState": "Succeeded",
				"createdAt": "2021-11-01T10:00:00Z",
				"serviceBusEndpoint": "https://contoso.servicebus.windows.net:443/",
				"publicNetworkAccess": "Enabled"
			}
		}`
		var ns RelayNamespace
		Expect(json.Unmarshal([]byte(in), &ns)).To(Succeed())

		want := RelayNamespace{
			TrackedResource: core.TrackedResource{
				Resource: core.Resource{
					ID:   to.StringPtr("/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Relay/namespaces/contoso"),
					Name: to.StringPtr("contoso"),
					Type: to.StringPtr("Microsoft.Relay/Namespaces"),
				},
				Location: "West US",
				Tags:     map[string]*string{"tag1": to.StringPtr("value1")},
			},
			SKU: &SKU{Name: SKUNameStandard, Tier: SKUTierStandard},
		}
		Expect(cmp.Diff(want.TrackedResource, ns.TrackedResource)).To(BeEmpty())
		Expect(cmp.Diff(want.SKU, ns.SKU)).To(BeEmpty())
		Expect(ns.SystemData.CreatedByType).To(Equal(core.CreatedByTypeUser))
		Expect(ns.Properties.CreatedAt.Year()).To(Equal(2021))

		out, err := json.Marshal(ns)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(MatchJSON(in))
	})

	It("omits absent tags", func() {
		ns := RelayNamespace{TrackedResource: core.TrackedResource{Location: "westus"}}
		out, err := json.Marshal(ns)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(MatchJSON(`{"location":"westus"}`))
	})

	It("rejects a namespace without a location", func() {
		var ns RelayNamespace
		err := json.Unmarshal([]byte(`{"name":"contoso","tags":{}}`), &ns)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("location"))

		var list RelayNamespaceListResult
		Expect(json.Unmarshal([]byte(`{"value":[{"name":"contoso"}]}`), &list)).NotTo(Succeed())
	})

	It("reports continuation only for non-empty links", func() {
		Expect(RelayNamespaceListResult{}.Continuation()).To(BeEmpty())
		Expect(RelayNamespaceListResult{NextLink: to.StringPtr("")}.Continuation()).To(BeEmpty())
		Expect(HybridConnectionListResult{NextLink: to.StringPtr("https://x/page2")}.Continuation()).To(Equal("https://x/page2"))
	})

	It("decodes proxy resources with the parent location", func() {
		in := `{"id":"/x/authorizationRules/root","name":"root","type":"Microsoft.Relay/Namespaces/AuthorizationRules","location":"West US","properties":{"rights":["Listen","Send","Manage"]}}`
		var rule AuthorizationRule
		Expect(json.Unmarshal([]byte(in), &rule)).To(Succeed())
		Expect(*rule.Location).To(Equal("West US"))
		Expect(rule.Properties.Rights).To(Equal([]AccessRights{Listen, Send, Manage}))
	})
})
