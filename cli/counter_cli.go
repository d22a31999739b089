package main

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"strings"
	"time"

	"counter-backend/chain"
	"counter-backend/contract"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/urfave/cli"
)

// 部署运维工具：部署合约、读值、自增、盯事件、查余额
// 不依赖后端服务的配置，单独一个 yaml，拷到哪台机器上都能跑

type cliConf struct {
	RpcUrl         string `mapstructure:"rpc_url"`
	WsUrl          string `mapstructure:"ws_url"`
	ChainId        int64  `mapstructure:"chain_id"`
	CounterAddress string `mapstructure:"counter_address"`
	ExplorerUrl    string `mapstructure:"explorer_url"`
}

func loadConf(path string) (cliConf, error) {
	var c cliConf
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return c, errors.Wrap(err, "read config")
	}
	if err := viper.Unmarshal(&c); err != nil {
		return c, errors.Wrap(err, "parse config")
	}
	return c, nil
}

// 私钥只从环境变量读，写进配置文件容易连文件一起提交出去
func adminTransactor(chainId int64) (*bind.TransactOpts, error) {
	hexkey, ok := os.LookupEnv("counter_admin_private_key")
	if !ok {
		return nil, errors.New("environment variable counter_admin_private_key is not set")
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexkey, "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "parse private key")
	}
	return bind.NewKeyedTransactorWithChainID(key, big.NewInt(chainId))
}

// counterAddress 命令行参数优先，其次配置文件
func counterAddress(ctx *cli.Context, conf cliConf) (common.Address, error) {
	addr := ctx.String("address")
	if addr == "" {
		addr = conf.CounterAddress
	}
	if addr == "" {
		return common.Address{}, errors.New("counter address not set, deploy first or pass --address")
	}
	return common.HexToAddress(addr), nil
}

func main() {
	app := cli.NewApp()
	app.Name = "counter-cli"
	app.Usage = "deploy and operate the counter contract on Morph"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "counter-cli.yaml",
			Usage: "path to the cli config file",
		},
	}

	addressFlag := cli.StringFlag{
		Name:  "address, a",
		Usage: "counter contract address (overrides config)",
	}

	app.Commands = []cli.Command{
		{
			Name:        "deploy",
			Action:      deploy,
			Description: "deploy the counter contract and print its address",
		},
		{
			Name:        "get",
			Action:      get,
			Flags:       []cli.Flag{addressFlag},
			Description: "read the current counter value",
		},
		{
			Name:        "increment",
			Action:      increment,
			Flags:       []cli.Flag{addressFlag},
			Description: "send an increment transaction and wait for it",
		},
		{
			Name:        "watch",
			Action:      watch,
			Flags:       []cli.Flag{addressFlag},
			Description: "stream CounterIncremented events until interrupted",
		},
		{
			Name:        "balance",
			Action:      balance,
			Description: "print the admin account balance in ETH",
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func deploy(ctx *cli.Context) error {
	conf, err := loadConf(ctx.GlobalString("config"))
	if err != nil {
		return err
	}
	client, err := chain.DialWithTimeout(conf.RpcUrl, 10*time.Second)
	if err != nil {
		return err
	}
	defer client.Close()
	auth, err := adminTransactor(conf.ChainId)
	if err != nil {
		return err
	}

	addr, tx, _, err := contract.DeployCounter(auth, client)
	if err != nil {
		return errors.Wrap(err, "deploy")
	}
	fmt.Println("deploy tx:", tx.Hash().Hex())
	fmt.Println("waiting for confirmation...")

	waitCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if _, err = bind.WaitDeployed(waitCtx, client, tx); err != nil {
		return errors.Wrap(err, "wait deployed")
	}

	fmt.Println("counter deployed at:", addr.Hex())
	if conf.ExplorerUrl != "" {
		fmt.Println("explorer:", conf.ExplorerUrl+"/address/"+addr.Hex())
	}
	fmt.Println()
	fmt.Println("next: set counter_address to this address in counter-cli.yaml and config.toml")
	return nil
}

func get(ctx *cli.Context) error {
	conf, err := loadConf(ctx.GlobalString("config"))
	if err != nil {
		return err
	}
	addr, err := counterAddress(ctx, conf)
	if err != nil {
		return err
	}
	client, err := chain.DialWithTimeout(conf.RpcUrl, 10*time.Second)
	if err != nil {
		return err
	}
	defer client.Close()

	caller, err := contract.NewCounterCaller(addr, client)
	if err != nil {
		return err
	}
	value, err := caller.GetCount(&bind.CallOpts{})
	if err != nil {
		return errors.Wrap(err, "getCount")
	}
	fmt.Println("counter value:", value.String())
	return nil
}

func increment(ctx *cli.Context) error {
	conf, err := loadConf(ctx.GlobalString("config"))
	if err != nil {
		return err
	}
	addr, err := counterAddress(ctx, conf)
	if err != nil {
		return err
	}
	client, err := chain.DialWithTimeout(conf.RpcUrl, 10*time.Second)
	if err != nil {
		return err
	}
	defer client.Close()
	auth, err := adminTransactor(conf.ChainId)
	if err != nil {
		return err
	}

	counter, err := contract.NewCounter(addr, client)
	if err != nil {
		return err
	}
	tx, err := counter.Increment(auth)
	if err != nil {
		return errors.Wrap(err, "increment")
	}
	fmt.Println("increment tx:", tx.Hash().Hex())
	fmt.Println("waiting for confirmation...")

	waitCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	receipt, err := bind.WaitMined(waitCtx, client, tx)
	if err != nil {
		return errors.Wrap(err, "wait mined")
	}
	fmt.Println("mined in block:", receipt.BlockNumber.String(), " gas used:", receipt.GasUsed)

	value, err := counter.GetCount(&bind.CallOpts{})
	if err != nil {
		return errors.Wrap(err, "getCount")
	}
	fmt.Println("counter value:", value.String())
	return nil
}

func watch(ctx *cli.Context) error {
	conf, err := loadConf(ctx.GlobalString("config"))
	if err != nil {
		return err
	}
	addr, err := counterAddress(ctx, conf)
	if err != nil {
		return err
	}
	if conf.WsUrl == "" {
		return errors.New("ws_url not set, watching needs a websocket endpoint")
	}
	client, err := chain.DialWithTimeout(conf.WsUrl, 10*time.Second)
	if err != nil {
		return err
	}
	defer client.Close()

	filterer, err := contract.NewCounterFilterer(addr, client)
	if err != nil {
		return err
	}
	sink := make(chan *contract.CounterCounterIncremented)
	sub, err := filterer.WatchCounterIncremented(&bind.WatchOpts{}, sink, nil)
	if err != nil {
		return errors.Wrap(err, "subscribe")
	}
	defer sub.Unsubscribe()

	fmt.Println("watching CounterIncremented on", addr.Hex(), "(ctrl-c to stop)")
	for {
		select {
		case err := <-sub.Err():
			return errors.Wrap(err, "subscription")
		case e := <-sink:
			fmt.Printf("block %d  tx %s  by %s  -> %s\n",
				e.Raw.BlockNumber, e.Raw.TxHash.Hex(), e.By.Hex(), e.NewValue.String())
		}
	}
}

func balance(ctx *cli.Context) error {
	conf, err := loadConf(ctx.GlobalString("config"))
	if err != nil {
		return err
	}
	hexkey, ok := os.LookupEnv("counter_admin_private_key")
	if !ok {
		return errors.New("environment variable counter_admin_private_key is not set")
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexkey, "0x"))
	if err != nil {
		return errors.Wrap(err, "parse private key")
	}
	addr := crypto.PubkeyToAddress(key.PublicKey)

	client, err := chain.DialWithTimeout(conf.RpcUrl, 10*time.Second)
	if err != nil {
		return err
	}
	defer client.Close()
	callCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	wei, err := client.BalanceAt(callCtx, addr, nil)
	if err != nil {
		return errors.Wrap(err, "balance")
	}

	eth := decimal.NewFromBigInt(wei, -18)
	fmt.Println("admin account:", addr.Hex())
	fmt.Println("balance:", eth.String(), "ETH")
	return nil
}
