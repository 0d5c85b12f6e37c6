package serialconsole_test

import (
	"context"
	"encoding/json"
	"net/http"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	azerr "github.com/Azure/azure-arm-clients-go/pkg/errors"
	. "github.com/Azure/azure-arm-clients-go/pkg/services/serialconsole"
)

var _ = Describe("Serial console", func() {
	var (
		ctx       = context.Background()
		transport *fakeTransport
		client    Client
		vm        = Parent{ResourceGroup: "console-rg", ProviderNamespace: "Microsoft.Compute", Type: "virtualMachines", Name: "vm1"}
	)

	BeforeEach(func() {
		transport = &fakeTransport{}
		client = newClient(transport)
	})

	Describe("console service", func() {
		It("reads the console status", func() {
			transport.responses = []*http.Response{respond(http.StatusOK, `{"properties":{"disabled":true}}`)}

			status, err := client.GetConsoleStatus(ctx, subscriptionID, DefaultConsole)
			Expect(err).NotTo(HaveOccurred())
			Expect(*status.Properties.Disabled).To(BeTrue())
			Expect(transport.requests[0].URL.Path).To(Equal("/subscriptions/00000000-0000-0000-0000-000000000000/providers/Microsoft.SerialConsole/consoleServices/default"))
			Expect(transport.requests[0].URL.Query().Get("api-version")).To(Equal(APIVersion))
		})

		It("exposes the subscription not found body", func() {
			transport.responses = []*http.Response{respond(http.StatusNotFound, `{"code":"SubscriptionNotFound","message":"The subscription was not found"}`)}

			_, err := client.GetConsoleStatus(ctx, subscriptionID, DefaultConsole)
			Expect(azerr.IsNotFound(err)).To(BeTrue())

			var body GetSerialConsoleSubscriptionNotFound
			Expect(azerr.DecodeBody(err, &body)).To(Succeed())
			Expect(*body.Code).To(Equal("SubscriptionNotFound"))
		})

		It("enables and disables the console with empty POSTs", func() {
			transport.responses = []*http.Response{
				respond(http.StatusOK, `{"properties":{"disabled":true}}`),
				respond(http.StatusOK, `{"properties":{"disabled":false}}`),
			}

			disabled, err := client.DisableConsole(ctx, subscriptionID, DefaultConsole)
			Expect(err).NotTo(HaveOccurred())
			Expect(*disabled.Properties.Disabled).To(BeTrue())

			enabled, err := client.EnableConsole(ctx, subscriptionID, DefaultConsole)
			Expect(err).NotTo(HaveOccurred())
			Expect(*enabled.Properties.Disabled).To(BeFalse())

			Expect(transport.requests[0].Method).To(Equal(http.MethodPost))
			Expect(transport.requests[0].URL.Path).To(HaveSuffix("/consoleServices/default/disableConsole"))
			Expect(transport.requests[1].URL.Path).To(HaveSuffix("/consoleServices/default/enableConsole"))
			Expect(transport.bodies).To(Equal([]string{"", ""}))
		})

		It("lists operations", func() {
			transport.responses = []*http.Response{respond(http.StatusOK, `{"value":[{"name":"Microsoft.SerialConsole/consoleServices/read","isDataAction":"false","display":{"provider":"Microsoft.SerialConsole"}}]}`)}

			ops, err := client.ListOperations(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(ops.Value).To(HaveLen(1))
			Expect(*ops.Value[0].IsDataAction).To(Equal("false"))
		})
	})

	Describe("serial ports", func() {
		It("creates a port and accepts only 201", func() {
			transport.responses = []*http.Response{
				respond(http.StatusCreated, `{"id":"/x/serialPorts/0","name":"0","type":"Microsoft.SerialConsole/serialPorts","properties":{"state":"enabled"}}`),
				respond(http.StatusOK, `{"name":"0","properties":{"state":"enabled"}}`),
			}

			port, err := client.SerialPorts().Create(ctx, subscriptionID, vm, "0", SerialPort{Properties: &SerialPortProperties{State: Enabled}})
			Expect(err).NotTo(HaveOccurred())
			Expect(port.Properties.State).To(Equal(Enabled))
			Expect(transport.requests[0].Method).To(Equal(http.MethodPut))
			Expect(transport.requests[0].URL.Path).To(Equal("/subscriptions/00000000-0000-0000-0000-000000000000/resourcegroups/console-rg/providers/Microsoft.Compute/virtualMachines/vm1/providers/Microsoft.SerialConsole/serialPorts/0"))
			Expect(transport.bodies[0]).To(MatchJSON(`{"properties":{"state":"enabled"}}`))

			_, err = client.SerialPorts().Create(ctx, subscriptionID, vm, "0", SerialPort{})
			Expect(azerr.StatusCode(err)).To(Equal(http.StatusOK))
		})

		It("keeps subordinate parent paths unescaped", func() {
			transport.responses = []*http.Response{respond(http.StatusOK, `{"connectionString":"wss://console.example/0"}`)}
			instance := Parent{ResourceGroup: "console-rg", ProviderNamespace: "Microsoft.Compute", Type: "virtualMachineScaleSets", Name: "vmss1/virtualMachines/0"}

			result, err := client.SerialPorts().Connect(ctx, subscriptionID, instance, "0")
			Expect(err).NotTo(HaveOccurred())
			Expect(*result.ConnectionString).To(HavePrefix("wss://"))
			Expect(transport.requests[0].Method).To(Equal(http.MethodPost))
			Expect(transport.requests[0].URL.Path).To(HaveSuffix("/virtualMachineScaleSets/vmss1/virtualMachines/0/providers/Microsoft.SerialConsole/serialPorts/0/connect"))
		})

		It("lists ports in one response", func() {
			transport.responses = []*http.Response{
				respond(http.StatusOK, `{"value":[{"name":"0","properties":{"state":"enabled"}},{"name":"1","properties":{"state":"disabled"}}]}`),
				respond(http.StatusOK, `{"value":[{"name":"0"}]}`),
			}

			ports, err := client.SerialPorts().List(ctx, subscriptionID, vm)
			Expect(err).NotTo(HaveOccurred())
			Expect(ports.Value).To(HaveLen(2))
			Expect(ports.Value[1].Properties.State).To(Equal(Disabled))
			Expect(transport.requests[0].URL.Path).To(HaveSuffix("/vm1/providers/Microsoft.SerialConsole/serialPorts"))

			all, err := client.SerialPorts().ListBySubscriptions(ctx, subscriptionID)
			Expect(err).NotTo(HaveOccurred())
			Expect(all.Value).To(HaveLen(1))
			Expect(transport.requests[1].URL.Query().Get("api-version")).To(Equal(APIVersion))
		})

		It("accepts both delete outcomes", func() {
			transport.responses = []*http.Response{respond(http.StatusOK, ""), respond(http.StatusNoContent, "")}

			first, err := client.SerialPorts().Delete(ctx, subscriptionID, vm, "0")
			Expect(err).NotTo(HaveOccurred())
			Expect(first.StatusCode).To(Equal(http.StatusOK))

			second, err := client.SerialPorts().Delete(ctx, subscriptionID, vm, "0")
			Expect(err).NotTo(HaveOccurred())
			Expect(second.StatusCode).To(Equal(http.StatusNoContent))
		})
	})

	It("keeps unknown port states", func() {
		var props SerialPortProperties
		Expect(json.Unmarshal([]byte(`{"state":"maintenance"}`), &props)).To(Succeed())
		Expect(props.State.IsKnown()).To(BeFalse())
		out, err := json.Marshal(props)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(MatchJSON(`{"state":"maintenance"}`))
	})
})
