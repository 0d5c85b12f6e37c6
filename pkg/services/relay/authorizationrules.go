// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package relay

import (
	"context"
	"net/http"

	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/validation"

	"github.com/Azure/azure-arm-clients-go/pkg/core"
)

// AuthorizationRuleDeleteResponse is 200 when the rule was removed and 204 when it did not exist.
type AuthorizationRuleDeleteResponse struct {
	autorest.Response
}

// authorizationRules implements the rule and key operations shared by
// namespaces, hybrid connections and WCF relays. path addresses the owning entity.
type authorizationRules struct {
	Client
	operation string
	path      string
}

const rulePath = "/authorizationRules/{authorizationRuleName}"

func (a authorizationRules) list(parameters map[string]string) *core.Pager[AuthorizationRuleListResult] {
	return newPager[AuthorizationRuleListResult](a.Client, core.Request{
		Operation:      a.operation + ".ListAuthorizationRules",
		Method:         http.MethodGet,
		Path:           a.path + "/authorizationRules",
		PathParameters: parameters,
	})
}

func (a authorizationRules) get(ctx context.Context, parameters map[string]string, ruleName string, checks ...validation.Validation) (result AuthorizationRule, err error) {
	operation := a.operation + ".GetAuthorizationRule"
	if err = validate(operation, append(checks, validName("authorizationRuleName", ruleName))...); err != nil {
		return result, err
	}
	_, err = a.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodGet,
		Path:           a.path + rulePath,
		PathParameters: with(parameters, "authorizationRuleName", ruleName),
	}, core.Into(&result), http.StatusOK)
	return result, err
}

func (a authorizationRules) createOrUpdate(ctx context.Context, parameters map[string]string, ruleName string, rule AuthorizationRule, checks ...validation.Validation) (result AuthorizationRule, err error) {
	operation := a.operation + ".CreateOrUpdateAuthorizationRule"
	if err = validate(operation, append(checks, validName("authorizationRuleName", ruleName))...); err != nil {
		return result, err
	}
	_, err = a.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodPut,
		Path:           a.path + rulePath,
		PathParameters: with(parameters, "authorizationRuleName", ruleName),
		Body:           rule,
	}, core.Into(&result), http.StatusOK)
	return result, err
}

func (a authorizationRules) delete(ctx context.Context, parameters map[string]string, ruleName string, checks ...validation.Validation) (result AuthorizationRuleDeleteResponse, err error) {
	operation := a.operation + ".DeleteAuthorizationRule"
	if err = validate(operation, append(checks, validName("authorizationRuleName", ruleName))...); err != nil {
		return result, err
	}
	result.Response.Response, err = a.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodDelete,
		Path:           a.path + rulePath,
		PathParameters: with(parameters, "authorizationRuleName", ruleName),
	}, nil, http.StatusOK, http.StatusNoContent)
	return result, err
}

func (a authorizationRules) listKeys(ctx context.Context, parameters map[string]string, ruleName string, checks ...validation.Validation) (result AccessKeys, err error) {
	operation := a.operation + ".ListKeys"
	if err = validate(operation, append(checks, validName("authorizationRuleName", ruleName))...); err != nil {
		return result, err
	}
	_, err = a.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodPost,
		Path:           a.path + rulePath + "/listKeys",
		PathParameters: with(parameters, "authorizationRuleName", ruleName),
	}, core.Into(&result), http.StatusOK)
	return result, err
}

func (a authorizationRules) regenerateKeys(ctx context.Context, parameters map[string]string, ruleName string, body RegenerateAccessKeyParameters, checks ...validation.Validation) (result AccessKeys, err error) {
	operation := a.operation + ".RegenerateKeys"
	checks = append(checks,
		validName("authorizationRuleName", ruleName),
		validName("parameters.KeyType", string(body.KeyType)))
	if err = validate(operation, checks...); err != nil {
		return result, err
	}
	_, err = a.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodPost,
		Path:           a.path + rulePath + "/regenerateKeys",
		PathParameters: with(parameters, "authorizationRuleName", ruleName),
		Body:           body,
	}, core.Into(&result), http.StatusOK)
	return result, err
}
