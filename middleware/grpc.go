package middleware

import (
	"context"
	"errors"

	cn "github.com/LerianStudio/lib-dashboard-go/constant"
	"github.com/LerianStudio/lib-dashboard-go/pkg"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UnaryServerInterceptor creates a gRPC unary server interceptor that gates methods on
// feature flags. methodFeatures maps a full method name (/pkg.Service/Method) to a flag;
// methods not in the map are always served.
func (c *DashboardClient) UnaryServerInterceptor(methodFeatures map[string]string) grpc.UnaryServerInterceptor {
	// Perform startup load
	c.startupLoad()

	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if err := c.checkMethodFeature(methodFeatures, info.FullMethod); err != nil {
			return nil, err
		}

		return handler(ctx, req)
	}
}

// StreamServerInterceptor creates a gRPC stream server interceptor that gates methods on feature flags
func (c *DashboardClient) StreamServerInterceptor(methodFeatures map[string]string) grpc.StreamServerInterceptor {
	// Perform startup load
	c.startupLoad()

	return func(
		srv any,
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		if err := c.checkMethodFeature(methodFeatures, info.FullMethod); err != nil {
			return err
		}

		return handler(srv, ss)
	}
}

func (c *DashboardClient) checkMethodFeature(methodFeatures map[string]string, fullMethod string) error {
	name, gated := methodFeatures[fullMethod]
	if !gated {
		return nil
	}

	on, err := c.FeatureEnabled(name)
	if err != nil {
		if errors.Is(err, cn.ErrUnknownFeature) {
			c.errorf("Method %s is gated on unknown feature %s (code %s)", fullMethod, name, cn.ErrUnknownFeature.Error())
			return status.Error(codes.NotFound, pkg.ValidateBusinessError(err, "Feature", name).Error())
		}

		c.errorf("Feature check failed for %s: %v", fullMethod, err)

		return status.Error(codes.Unavailable, pkg.ValidateBusinessError(err, "Feature", "its sources").Error())
	}

	if !on {
		c.warnf("Method %s rejected, feature %s is disabled (code %s)", fullMethod, name, cn.ErrFeatureDisabled.Error())
		return status.Error(codes.PermissionDenied, pkg.ValidateBusinessError(cn.ErrFeatureDisabled, "Feature", name).Error())
	}

	return nil
}
